package coerce

import "github.com/rubiojr/coerce/value"

// Candidate method order per hint. A string hint prefers toString; number
// and default hints prefer valueOf.
var (
	stringFirst  = [2]string{"toString", "valueOf"}
	valueOfFirst = [2]string{"valueOf", "toString"}
)

// ToPrimitive implements the ToPrimitive abstract operation. Primitive
// inputs pass through unchanged. For objects, the two candidate methods
// are resolved and invoked in hint order; the first primitive result wins
// and the remaining candidate is not tried. A method failure relays
// unchanged. If neither candidate yields a primitive, the conversion
// fails with a TypeCoercionError.
//
// This is the single control point the other operations delegate object
// inputs to, and the only place user-supplied code can run.
func (e *Engine) ToPrimitive(v value.Value, hint Hint) (value.Value, error) {
	if v.IsPrimitive() {
		return v, nil
	}
	obj := must(v.Obj())

	candidates := valueOfFirst
	if hint == HintString {
		candidates = stringFirst
	}

	for _, name := range candidates {
		if e.resolver == nil {
			break
		}
		method, ok := e.resolver.Resolve(obj, name)
		if !ok {
			continue
		}
		res, err := method()
		if err != nil {
			return value.Value{}, err
		}
		if res.IsPrimitive() {
			return res, nil
		}
	}
	return value.Value{}, coercionErr("ToPrimitive", v.Kind(), "cannot convert to primitive")
}
