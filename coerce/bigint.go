package coerce

import (
	"math/big"

	"github.com/rubiojr/coerce/value"
)

var (
	two64 = new(big.Int).Lsh(big.NewInt(1), 64)
	two63 = new(big.Int).Lsh(big.NewInt(1), 63)
)

// ToBigInt implements the ToBigInt abstract operation. Booleans become 0n
// or 1n, BigInts pass through, and strings must spell a complete integer
// literal. Numbers never convert implicitly (loss of precision would be
// silent), and neither do symbols, undefined or null. Objects go through
// ToPrimitive with a number hint first.
func (e *Engine) ToBigInt(v value.Value) (value.Value, error) {
	if v.Kind() == value.KindObject {
		prim, err := e.ToPrimitive(v, HintNumber)
		if err != nil {
			return value.Value{}, err
		}
		v = prim
	}

	switch v.Kind() {
	case value.KindBoolean:
		if must(v.Bool()) {
			return value.BigIntFromInt64(1), nil
		}
		return value.BigIntFromInt64(0), nil
	case value.KindBigInt:
		return v, nil
	case value.KindString:
		s := must(v.Str())
		n, ok := StringToBigInt(s)
		if !ok {
			return value.Value{}, coercionErr("ToBigInt", v.Kind(), "cannot convert %q to a BigInt", s)
		}
		return value.BigInt(n), nil
	default:
		return value.Value{}, coercionErr("ToBigInt", v.Kind(), "cannot convert a %s to a BigInt", v.Kind())
	}
}

// StringToBigInt parses s per the StringIntegerLiteral grammar: optional
// whitespace around either an optionally signed run of decimal digits or
// an unsigned 0x/0o/0b literal. An empty remainder is 0n. Fractions,
// exponents and Infinity do not parse.
func StringToBigInt(s string) (*big.Int, bool) {
	s = trimStrWhiteSpace(s)
	if s == "" {
		return big.NewInt(0), true
	}

	if len(s) >= 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return radixBigInt(s[2:], base)
		}
	}

	neg := false
	body := s
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}
	n, ok := radixBigInt(body, 10)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}

func radixBigInt(digits string, base int) (*big.Int, bool) {
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if !validDigit(digits[i], base) {
			return nil, false
		}
	}
	return new(big.Int).SetString(digits, base)
}

// ToBigInt64 implements the ToBigInt64 abstract operation: ToBigInt
// followed by a wrap modulo 2^64 reinterpreted as a signed value in
// [-2^63, 2^63).
func (e *Engine) ToBigInt64(v value.Value) (value.Value, error) {
	b, err := e.ToBigInt(v)
	if err != nil {
		return value.Value{}, err
	}
	n := new(big.Int).Mod(must(b.Big()), two64)
	if n.Cmp(two63) >= 0 {
		n.Sub(n, two64)
	}
	return value.BigInt(n), nil
}

// ToBigUint64 implements the ToBigUint64 abstract operation: ToBigInt
// followed by a wrap modulo 2^64 into [0, 2^64).
func (e *Engine) ToBigUint64(v value.Value) (value.Value, error) {
	b, err := e.ToBigInt(v)
	if err != nil {
		return value.Value{}, err
	}
	n := new(big.Int).Mod(must(b.Big()), two64)
	return value.BigInt(n), nil
}
