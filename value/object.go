package value

import "strings"

// Callable is a zero-argument conversion method attached to an object:
// the model of toString/valueOf. It may return any Value, including
// another object, or fail with an arbitrary error that the engine relays
// unchanged.
type Callable func() (Value, error)

// Prop is a single key/value pair of an object.
type Prop struct {
	Key   string
	Value Value
}

// Obj is the object payload: an insertion-ordered property list plus the
// two optional conversion method slots. Property storage exists for
// structural inspection by hosts and tests; the engine itself only ever
// touches the conversion slots, and only through a MethodResolver.
type Obj struct {
	props []Prop

	// NumericConversion models valueOf, StringConversion models toString.
	// A nil slot means the object defines no own method; whether a
	// resolver substitutes an inherited default is the host's business.
	NumericConversion Callable
	StringConversion  Callable
}

// NewObj creates an empty object.
func NewObj() *Obj { return &Obj{} }

// Set adds or replaces a property, preserving insertion order.
func (o *Obj) Set(key string, v Value) {
	for i := range o.props {
		if o.props[i].Key == key {
			o.props[i].Value = v
			return
		}
	}
	o.props = append(o.props, Prop{Key: key, Value: v})
}

// Get returns the property value for key.
func (o *Obj) Get(key string) (Value, bool) {
	for _, p := range o.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of properties.
func (o *Obj) Len() int { return len(o.props) }

// Props returns the properties in insertion order. The slice is shared;
// callers must not mutate it.
func (o *Obj) Props() []Prop { return o.props }

func (o *Obj) format() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range o.props {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Key)
		sb.WriteString(": ")
		sb.WriteString(p.Value.Format())
	}
	sb.WriteByte('}')
	return sb.String()
}
