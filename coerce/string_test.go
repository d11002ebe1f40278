package coerce

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/coerce/value"
)

func TestNumberToString(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"zero", 0, "0"},
		{"negative zero drops sign", math.Copysign(0, -1), "0"},
		{"integer", 123, "123"},
		{"negative integer", -123, "-123"},
		{"fraction", 1.5, "1.5"},
		{"leading zero fraction", 0.5, "0.5"},
		{"smallest plain decimal", 1e-6, "0.000001"},
		{"below threshold goes exponential", 1e-7, "1e-7"},
		{"largest plain integer", 1e20, "100000000000000000000"},
		{"at 1e21 goes exponential", 1e21, "1e+21"},
		{"multi digit exponential", 1.5e21, "1.5e+21"},
		{"negative exponential", -1e21, "-1e+21"},
		{"shortest digits survive placement", 123456789123456789123, "123456789123456780000"},
		{"max float64", math.MaxFloat64, "1.7976931348623157e+308"},
		{"min denormal", 5e-324, "5e-324"},
		{"third", 1.0 / 3.0, "0.3333333333333333"},
		{"point one", 0.1, "0.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NumberToString(tc.in))
		})
	}
}

func TestToStringPrimitives(t *testing.T) {
	eng := New(&slotResolver{})
	cases := []struct {
		name string
		in   value.Value
		want string
	}{
		{"undefined", value.Undefined(), "undefined"},
		{"null", value.Null(), "null"},
		{"true", value.Boolean(true), "true"},
		{"false", value.Boolean(false), "false"},
		{"number", value.Number(8), "8"},
		{"bigint no suffix", value.BigIntFromInt64(123), "123"},
		{"bigint keeps sign", value.BigIntFromInt64(-42), "-42"},
		{"string identity", value.String("hi"), "hi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eng.ToString(tc.in)
			require.NoError(t, err)
			s, err := got.Str()
			require.NoError(t, err)
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestToStringSymbolFails(t *testing.T) {
	eng := New(&slotResolver{})
	_, err := eng.ToString(value.NewSymbol("d"))
	var ce *TypeCoercionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "ToString", ce.Op)
}

func TestToStringObjectDelegates(t *testing.T) {
	eng := New(&slotResolver{})
	obj := objWith(returns(value.Number(7)), returns(value.Number(99)))
	got, err := eng.ToString(obj)
	require.NoError(t, err)
	s, _ := got.Str()
	assert.Equal(t, "99", s, "string hint prefers toString, then stringifies its result")
}

func TestToStringObjectExhaustionPropagates(t *testing.T) {
	eng := New(&slotResolver{})
	_, err := eng.ToString(value.Object(value.NewObj()))
	var ce *TypeCoercionError
	assert.True(t, errors.As(err, &ce))
}
