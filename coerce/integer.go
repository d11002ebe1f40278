package coerce

import (
	"math"

	"github.com/rubiojr/coerce/value"
)

// ToIntegerOrInfinity implements the ToIntegerOrInfinity abstract
// operation: NaN and ±0 become +0, the infinities survive, and every
// other number truncates toward zero. Only the ToNumber step can fail.
func (e *Engine) ToIntegerOrInfinity(v value.Value) (float64, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	f := must(n.Num())
	switch {
	case math.IsNaN(f) || f == 0:
		return 0, nil
	case math.IsInf(f, 0):
		return f, nil
	default:
		f = math.Trunc(f)
		if f == 0 {
			// trunc(-0.5) is -0; the operation returns +0
			return 0, nil
		}
		return f, nil
	}
}

// moduloPow2 is the shared reduction behind the fixed-width conversions:
// non-finite and zero inputs collapse to 0, everything else truncates and
// wraps modulo 2^bits into [0, 2^bits). Exact for any float64 since both
// Trunc and Mod are exact operations.
func moduloPow2(f float64, bits uint) uint64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	m := math.Exp2(float64(bits))
	r := math.Mod(f, m)
	if r < 0 {
		r += m
	}
	return uint64(r)
}

// ToInt32 implements the ToInt32 abstract operation.
func (e *Engine) ToInt32(v value.Value) (int32, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	return int32(uint32(moduloPow2(must(n.Num()), 32))), nil
}

// ToUint32 implements the ToUint32 abstract operation.
func (e *Engine) ToUint32(v value.Value) (uint32, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	return uint32(moduloPow2(must(n.Num()), 32)), nil
}

// ToInt16 implements the ToInt16 abstract operation.
func (e *Engine) ToInt16(v value.Value) (int16, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	return int16(uint16(moduloPow2(must(n.Num()), 16))), nil
}

// ToUint16 implements the ToUint16 abstract operation.
func (e *Engine) ToUint16(v value.Value) (uint16, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	return uint16(moduloPow2(must(n.Num()), 16)), nil
}

// ToInt8 implements the ToInt8 abstract operation.
func (e *Engine) ToInt8(v value.Value) (int8, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	return int8(uint8(moduloPow2(must(n.Num()), 8))), nil
}

// ToUint8 implements the ToUint8 abstract operation.
func (e *Engine) ToUint8(v value.Value) (uint8, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	return uint8(moduloPow2(must(n.Num()), 8)), nil
}

// ToUint8Clamp implements the ToUint8Clamp abstract operation: NaN maps
// to 0, values clamp into [0, 255], and exact halves round to the even
// neighbor rather than truncating or wrapping.
func (e *Engine) ToUint8Clamp(v value.Value) (uint8, error) {
	n, err := e.ToNumber(v)
	if err != nil {
		return 0, err
	}
	f := must(n.Num())
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0, nil
	case f >= 255:
		return 255, nil
	}
	fl := math.Floor(f)
	switch {
	case fl+0.5 < f:
		return uint8(fl) + 1, nil
	case f < fl+0.5:
		return uint8(fl), nil
	case uint8(fl)%2 == 1:
		return uint8(fl) + 1, nil
	default:
		return uint8(fl), nil
	}
}
