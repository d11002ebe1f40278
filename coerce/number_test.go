package coerce

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/coerce/value"
)

func TestStringToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"\t\n\r ", 0},
		{" \uFEFF", 0},   // NBSP and ZWNBSP trim too
		{"  8  ", 8}, // line separators trim
		{" 8.0 ", 8},
		{"42", 42},
		{"+42", 42},
		{"-42", -42},
		{".5", 0.5},
		{"5.", 5},
		{"-.5", -0.5},
		{"1e3", 1000},
		{"1E3", 1000},
		{"1e+3", 1000},
		{"1e-3", 0.001},
		{"2.5e2", 250},
		{"0123", 123}, // leading zero stays decimal
		{"0x10", 16},
		{"0XFF", 255},
		{"0o17", 15},
		{"0O17", 15},
		{"0b101", 5},
		{"0B101", 5},
		{"Infinity", math.Inf(1)},
		{"+Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"  Infinity  ", math.Inf(1)},
		{"1e999", math.Inf(1)}, // overflow rounds to Infinity
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, StringToNumber(tc.in))
		})
	}

	nan := []string{
		"hello", "123px", "12 34", "1e", "1e+", "--42", "+-42", "+ 42",
		"1.2.3", ".", "0x", "0xg", "-0x10", "+0b1", "1_000", "0x1p3",
		"Infinity1", "infinity", " NaN ", "12n",
	}
	for _, in := range nan {
		t.Run("NaN "+in, func(t *testing.T) {
			assert.True(t, math.IsNaN(StringToNumber(in)), "%q must not parse", in)
		})
	}
}

func TestStringToNumberSignedZero(t *testing.T) {
	f := StringToNumber("-0")
	assert.Equal(t, 0.0, f)
	assert.True(t, math.Signbit(f), `"-0" parses to negative zero`)
}

func TestStringToNumberLongHexRoundsOnce(t *testing.T) {
	// 2^64: exceeds uint64 digit accumulation but must round exactly.
	assert.Equal(t, math.Exp2(64), StringToNumber("0x10000000000000000"))
}

func TestToNumberPrimitives(t *testing.T) {
	eng := New(&slotResolver{})
	cases := []struct {
		name string
		in   value.Value
		want float64
	}{
		{"null", value.Null(), 0},
		{"true", value.Boolean(true), 1},
		{"false", value.Boolean(false), 0},
		{"number identity", value.Number(3.5), 3.5},
		{"string", value.String("8"), 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eng.ToNumber(tc.in)
			require.NoError(t, err)
			f, err := got.Num()
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}

	got, err := eng.ToNumber(value.Undefined())
	require.NoError(t, err)
	f, _ := got.Num()
	assert.True(t, math.IsNaN(f))
}

func TestToNumberRefusals(t *testing.T) {
	eng := New(&slotResolver{})
	for _, v := range []value.Value{value.BigIntFromInt64(1), value.NewSymbol("s")} {
		_, err := eng.ToNumber(v)
		var ce *TypeCoercionError
		require.True(t, errors.As(err, &ce), "%s must refuse", v.Kind())
		assert.Equal(t, "ToNumber", ce.Op)
	}
}

func TestToNumberObjectChain(t *testing.T) {
	eng := New(&slotResolver{})

	// valueOf yields a non-primitive, toString yields "", ToNumber("")
	// is +0: the full object → primitive → number chain.
	obj := objWith(returns(value.Object(value.NewObj())), returns(value.String("")))
	got, err := eng.ToNumber(obj)
	require.NoError(t, err)
	f, _ := got.Num()
	assert.Equal(t, 0.0, f)
	assert.False(t, math.Signbit(f))
}

func TestToNumberToStringRoundTrip(t *testing.T) {
	eng := New(&slotResolver{})
	for _, n := range []float64{
		0, 1, -1, 42, -42, 1e6, 123456789, -987654321,
		9007199254740991, -9007199254740991, // ±(2^53-1)
	} {
		s, err := eng.ToString(value.Number(n))
		require.NoError(t, err)
		back, err := eng.ToNumber(s)
		require.NoError(t, err)
		f, _ := back.Num()
		assert.Equal(t, n, f, "round trip of %v", n)
	}
}

func TestToNumericBigIntPassthrough(t *testing.T) {
	eng := New(&slotResolver{})

	got, err := eng.ToNumeric(value.BigIntFromInt64(7))
	require.NoError(t, err)
	assert.Equal(t, value.KindBigInt, got.Kind())

	got, err = eng.ToNumeric(value.String("8"))
	require.NoError(t, err)
	assert.Equal(t, value.KindNumber, got.Kind())

	obj := objWith(returns(value.BigIntFromInt64(5)), nil)
	got, err = eng.ToNumeric(obj)
	require.NoError(t, err)
	require.Equal(t, value.KindBigInt, got.Kind())
	n, _ := got.Big()
	assert.Equal(t, int64(5), n.Int64())
}
