// Package host provides a minimal embedding host for the coercion
// engine: a MethodResolver that supplies the inherited default
// toString/valueOf behavior of plain objects and arrays, the way
// Object.prototype and Array.prototype would.
package host

import (
	"strconv"
	"strings"

	"github.com/rubiojr/coerce/coerce"
	"github.com/rubiojr/coerce/value"
)

// Resolver resolves toString and valueOf on objects. An explicit
// conversion slot on the object wins; otherwise the resolver answers with
// the prototype defaults: valueOf returns the object itself (never a
// primitive, so ToPrimitive falls through to toString), and toString
// returns "[object Object]".
type Resolver struct {
	engine *coerce.Engine
}

// NewEngine returns a coercion engine wired to a host resolver.
func NewEngine() *coerce.Engine {
	r := &Resolver{}
	eng := coerce.New(r)
	r.engine = eng
	return eng
}

// Resolve implements coerce.MethodResolver.
func (r *Resolver) Resolve(o *value.Obj, name string) (value.Callable, bool) {
	switch name {
	case "valueOf":
		if o.NumericConversion != nil {
			return o.NumericConversion, true
		}
		self := value.Object(o)
		return func() (value.Value, error) { return self, nil }, true
	case "toString":
		if o.StringConversion != nil {
			return o.StringConversion, true
		}
		return func() (value.Value, error) {
			return value.String("[object Object]"), nil
		}, true
	default:
		return nil, false
	}
}

// NewObject builds a plain object from ordered key/value pairs. With no
// explicit conversion slots it stringifies as "[object Object]" through
// the resolver defaults.
func NewObject(props ...value.Prop) value.Value {
	o := value.NewObj()
	for _, p := range props {
		o.Set(p.Key, p.Value)
	}
	return value.Object(o)
}

// WithValueOf attaches a valueOf returning the fixed value ret.
func WithValueOf(v value.Value, ret value.Value) value.Value {
	o, err := v.Obj()
	if err != nil {
		panic(err)
	}
	o.NumericConversion = func() (value.Value, error) { return ret, nil }
	return v
}

// WithToString attaches a toString returning the fixed value ret.
func WithToString(v value.Value, ret value.Value) value.Value {
	o, err := v.Obj()
	if err != nil {
		panic(err)
	}
	o.StringConversion = func() (value.Value, error) { return ret, nil }
	return v
}

// NewArray builds an array-like object: index properties plus length, and
// a toString that joins the elements with commas the way
// Array.prototype.join does, with undefined and null elements rendering
// as the empty string. An empty array therefore stringifies to "", which
// is why ToNumber([]) is +0.
func NewArray(eng *coerce.Engine, elems ...value.Value) value.Value {
	o := value.NewObj()
	for i, el := range elems {
		o.Set(strconv.Itoa(i), el)
	}
	o.Set("length", value.Number(float64(len(elems))))
	o.StringConversion = func() (value.Value, error) {
		var sb strings.Builder
		for i, el := range elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			if el.Kind() == value.KindUndefined || el.Kind() == value.KindNull {
				continue
			}
			s, err := eng.ToString(el)
			if err != nil {
				return value.Value{}, err
			}
			str, err := s.Str()
			if err != nil {
				return value.Value{}, err
			}
			sb.WriteString(str)
		}
		return value.String(sb.String()), nil
	}
	return value.Object(o)
}
