package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/rubiojr/coerce/value"
)

// ToString implements the ToString abstract operation. Symbols never
// stringify implicitly and fail with a TypeCoercionError. Objects go
// through ToPrimitive with a string hint and then one more ToString step;
// ToPrimitive guarantees a primitive result, so the recursion is bounded.
func (e *Engine) ToString(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindUndefined:
		return value.String("undefined"), nil
	case value.KindNull:
		return value.String("null"), nil
	case value.KindBoolean:
		if must(v.Bool()) {
			return value.String("true"), nil
		}
		return value.String("false"), nil
	case value.KindNumber:
		return value.String(NumberToString(must(v.Num()))), nil
	case value.KindBigInt:
		return value.String(must(v.Big()).String()), nil
	case value.KindString:
		return v, nil
	case value.KindSymbol:
		return value.Value{}, coercionErr("ToString", v.Kind(), "cannot convert a symbol to a string")
	default:
		prim, err := e.ToPrimitive(v, HintString)
		if err != nil {
			return value.Value{}, err
		}
		return e.ToString(prim)
	}
}

// NumberToString renders a float64 the way Number::toString(10) does:
// shortest round-trippable digits, plain decimal notation while the
// decimal point position n satisfies -6 < n <= 21, and lowercase-e
// exponential notation with an explicit sign otherwise. The sign of
// negative zero is dropped.
func NumberToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + NumberToString(-f)
	}

	// Shortest digits via strconv, then reposition the decimal point per
	// the Number::toString k/n bookkeeping: s holds the digits with no
	// leading or trailing zeros, k = len(s), and n is such that the value
	// is 0.s × 10^n.
	mant := strconv.FormatFloat(f, 'e', -1, 64)
	ePos := strings.IndexByte(mant, 'e')
	exp, err := strconv.Atoi(mant[ePos+1:])
	if err != nil {
		panic("coerce: malformed strconv exponent: " + mant)
	}
	s := strings.Replace(mant[:ePos], ".", "", 1)
	k := len(s)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return s + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return s[:n] + "." + s[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + s
	case k == 1:
		return s + "e" + expString(n-1)
	default:
		return s[:1] + "." + s[1:] + "e" + expString(n-1)
	}
}

func expString(e int) string {
	if e >= 0 {
		return "+" + strconv.Itoa(e)
	}
	return strconv.Itoa(e)
}
