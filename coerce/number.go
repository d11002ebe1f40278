package coerce

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/rubiojr/coerce/value"
)

// ToNumber implements the ToNumber abstract operation. BigInts and
// symbols fail with a TypeCoercionError: neither ever converts to a
// number implicitly. Objects go through ToPrimitive with a number hint
// and then one more ToNumber step.
func (e *Engine) ToNumber(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindUndefined:
		return value.Number(math.NaN()), nil
	case value.KindNull:
		return value.Number(0), nil
	case value.KindBoolean:
		if must(v.Bool()) {
			return value.Number(1), nil
		}
		return value.Number(0), nil
	case value.KindNumber:
		return v, nil
	case value.KindString:
		return value.Number(StringToNumber(must(v.Str()))), nil
	case value.KindBigInt:
		return value.Value{}, coercionErr("ToNumber", v.Kind(), "cannot convert a BigInt to a number")
	case value.KindSymbol:
		return value.Value{}, coercionErr("ToNumber", v.Kind(), "cannot convert a symbol to a number")
	default:
		prim, err := e.ToPrimitive(v, HintNumber)
		if err != nil {
			return value.Value{}, err
		}
		return e.ToNumber(prim)
	}
}

// StringToNumber parses s per the StringNumericLiteral grammar. Leading
// and trailing whitespace and line terminators are ignored; an empty
// remainder is +0; a remainder that is not a complete numeric literal is
// NaN. Recognized forms: optionally signed decimal literals (digits,
// fraction, exponent, Infinity) and unsigned 0x/0o/0b radix literals of
// any length. Numeric separators and hex floats are not part of the
// grammar and yield NaN.
func StringToNumber(s string) float64 {
	s = trimStrWhiteSpace(s)
	if s == "" {
		return 0
	}

	// Radix literals come before sign handling: the grammar admits no
	// sign on them, so "-0x10" is NaN.
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radixLiteral(s[2:], 16)
		case 'o', 'O':
			return radixLiteral(s[2:], 8)
		case 'b', 'B':
			return radixLiteral(s[2:], 2)
		}
	}

	neg := false
	body := s
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}

	var f float64
	switch {
	case body == "Infinity":
		f = math.Inf(1)
	case validDecimalLiteral(body):
		// The validated forms are a strict subset of Go float syntax, so
		// ParseFloat only ever fails here with a range error, whose
		// rounded result (±Inf or a subnormal) is exactly what the
		// grammar prescribes.
		f, _ = strconv.ParseFloat(body, 64)
	default:
		return math.NaN()
	}
	if neg {
		return -f
	}
	return f
}

// validDecimalLiteral checks body against the unsigned decimal literal
// grammar: DecimalDigits ['.' DecimalDigits] | '.' DecimalDigits, each
// optionally followed by an e/E exponent with optional sign.
func validDecimalLiteral(body string) bool {
	i := 0
	digits := func() int {
		start := i
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			i++
		}
		return i - start
	}

	intDigits := digits()
	fracDigits := 0
	if i < len(body) && body[i] == '.' {
		i++
		fracDigits = digits()
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < len(body) && (body[i] == 'e' || body[i] == 'E') {
		i++
		if i < len(body) && (body[i] == '+' || body[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	return i == len(body)
}

// radixLiteral converts the digit run of a 0x/0o/0b literal. Digits of
// any length are accepted: the exact integer value is computed first and
// then rounded once to float64, so long hex strings don't accumulate
// per-digit rounding error.
func radixLiteral(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}
	for i := 0; i < len(digits); i++ {
		if !validDigit(digits[i], base) {
			return math.NaN()
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func validDigit(c byte, base int) bool {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return false
	}
	return v < base
}

// trimStrWhiteSpace strips the characters the grammar ignores around a
// numeric literal: WhiteSpace plus LineTerminator, which is a wider set
// than strings.TrimSpace covers (NBSP, ZWNBSP, the Zs category, LS, PS).
func trimStrWhiteSpace(s string) string {
	isStrWS := func(r rune) bool {
		switch r {
		case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u2028', '\u2029', '\ufeff':
			return true
		}
		return unicode.Is(unicode.Zs, r)
	}
	return strings.TrimFunc(s, isStrWS)
}
