// Package value defines the tagged value model the coercion engine operates
// on: one Value kind per ECMAScript language type, with payloads kept
// bit-faithful (IEEE-754 signed zero and NaN for numbers, arbitrary
// precision for BigInt, pointer identity for symbols).
package value

import (
	"fmt"
	"math"
	"math/big"
)

// Kind identifies which payload of a Value is live.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindSymbol
	KindObject
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindBigInt:    "bigint",
	KindString:    "string",
	KindSymbol:    "symbol",
	KindObject:    "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// TypeMismatchError reports a typed accessor called on a Value of a
// different kind. It signals a programmer error in the caller, not a
// coercion failure.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value: %s accessor called on %s value", e.Want, e.Got)
}

// Value is a sum type over the eight ECMAScript value kinds. Exactly one
// payload is live at any time, selected by the kind tag. Values are
// immutable; the zero Value is undefined.
type Value struct {
	kind Kind
	num  float64
	str  string
	bit  bool
	big  *big.Int
	sym  *Symbol
	obj  *Obj
}

// Symbol carries a unique identity plus an optional description. Two
// symbols are the same symbol only if they are the same pointer.
type Symbol struct {
	Description string
}

// Undefined returns the undefined value.
func Undefined() Value { return Value{kind: KindUndefined} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Boolean wraps a Go bool.
func Boolean(b bool) Value { return Value{kind: KindBoolean, bit: b} }

// Number wraps a float64. Signed zero, NaN and the infinities pass through
// bit-for-bit.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// BigInt wraps an arbitrary-precision integer. The argument is copied so
// later mutation of n cannot alter the stored payload.
func BigInt(n *big.Int) Value {
	return Value{kind: KindBigInt, big: new(big.Int).Set(n)}
}

// BigIntFromInt64 is a convenience constructor for small BigInt values.
func BigIntFromInt64(n int64) Value {
	return Value{kind: KindBigInt, big: big.NewInt(n)}
}

// String wraps a Go string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// NewSymbol creates a fresh symbol with the given description. Every call
// yields a distinct identity.
func NewSymbol(description string) Value {
	return Value{kind: KindSymbol, sym: &Symbol{Description: description}}
}

// Object wraps an object payload.
func Object(o *Obj) Value { return Value{kind: KindObject, obj: o} }

// Kind returns the live kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsPrimitive reports whether v is any kind other than Object.
func (v Value) IsPrimitive() bool { return v.kind != KindObject }

// Bool returns the boolean payload.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBoolean {
		return false, &TypeMismatchError{Want: KindBoolean, Got: v.kind}
	}
	return v.bit, nil
}

// Num returns the number payload.
func (v Value) Num() (float64, error) {
	if v.kind != KindNumber {
		return 0, &TypeMismatchError{Want: KindNumber, Got: v.kind}
	}
	return v.num, nil
}

// Big returns the bigint payload. Callers must not mutate the result.
func (v Value) Big() (*big.Int, error) {
	if v.kind != KindBigInt {
		return nil, &TypeMismatchError{Want: KindBigInt, Got: v.kind}
	}
	return v.big, nil
}

// Str returns the string payload.
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

// Sym returns the symbol payload.
func (v Value) Sym() (*Symbol, error) {
	if v.kind != KindSymbol {
		return nil, &TypeMismatchError{Want: KindSymbol, Got: v.kind}
	}
	return v.sym, nil
}

// Obj returns the object payload.
func (v Value) Obj() (*Obj, error) {
	if v.kind != KindObject {
		return nil, &TypeMismatchError{Want: KindObject, Got: v.kind}
	}
	return v.obj, nil
}

// SameValue implements the SameValue comparison: NaN equals NaN, and +0
// does not equal -0. Objects and symbols compare by identity.
func SameValue(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBoolean:
		return a.bit == b.bit
	case KindNumber:
		if math.IsNaN(a.num) && math.IsNaN(b.num) {
			return true
		}
		return math.Float64bits(a.num) == math.Float64bits(b.num)
	case KindBigInt:
		return a.big.Cmp(b.big) == 0
	case KindString:
		return a.str == b.str
	case KindSymbol:
		return a.sym == b.sym
	case KindObject:
		return a.obj == b.obj
	default:
		return false
	}
}

// Format renders v for diagnostics (REPL echo, test failure messages). It
// is not ToString: it quotes strings, keeps the BigInt n suffix, shows -0,
// and never invokes conversion methods.
func (v Value) Format() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		if v.bit {
			return "true"
		}
		return "false"
	case KindNumber:
		if v.num == 0 && math.Signbit(v.num) {
			return "-0"
		}
		return fmt.Sprintf("%v", v.num)
	case KindBigInt:
		return v.big.String() + "n"
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindSymbol:
		if v.sym.Description != "" {
			return fmt.Sprintf("Symbol(%q)", v.sym.Description)
		}
		return "Symbol()"
	case KindObject:
		return v.obj.format()
	default:
		return fmt.Sprintf("<invalid %s>", v.kind)
	}
}
