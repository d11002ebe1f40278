package coerce

import (
	"math"

	"github.com/rubiojr/coerce/value"
)

// Truthy implements ToBoolean as a predicate. It is total: a value is
// falsy iff it is undefined, null, false, ±0, NaN, the empty string or
// 0n; everything else, objects included, is truthy.
func Truthy(v value.Value) bool {
	switch v.Kind() {
	case value.KindUndefined, value.KindNull:
		return false
	case value.KindBoolean:
		return must(v.Bool())
	case value.KindNumber:
		n := must(v.Num())
		return n != 0 && !math.IsNaN(n)
	case value.KindBigInt:
		return must(v.Big()).Sign() != 0
	case value.KindString:
		return must(v.Str()) != ""
	default:
		// symbols and objects
		return true
	}
}

// ToBoolean implements the ToBoolean abstract operation. It never fails
// and never consults the resolver.
func (e *Engine) ToBoolean(v value.Value) value.Value {
	return value.Boolean(Truthy(v))
}
