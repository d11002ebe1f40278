package coerce

import "github.com/rubiojr/coerce/value"

// ToNumeric implements the ToNumeric abstract operation: the result is a
// Number unless the primitive form of v is already a BigInt, which passes
// through unchanged.
func (e *Engine) ToNumeric(v value.Value) (value.Value, error) {
	prim, err := e.ToPrimitive(v, HintDefault)
	if err != nil {
		return value.Value{}, err
	}
	if prim.Kind() == value.KindBigInt {
		return prim, nil
	}
	return e.ToNumber(prim)
}
