package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/coerce/coerce"
	"github.com/rubiojr/coerce/value"
)

func TestRegistryCoversAllOperations(t *testing.T) {
	want := []string{
		"ToBigInt", "ToBigInt64", "ToBigUint64", "ToBoolean",
		"ToInt16", "ToInt32", "ToInt8", "ToIntegerOrInfinity",
		"ToNumber", "ToNumeric", "ToPrimitive", "ToString",
		"ToUint16", "ToUint32", "ToUint8", "ToUint8Clamp",
	}
	assert.Equal(t, want, Names(), "Names is sorted and complete")
}

func TestOnlyToPrimitiveTakesHint(t *testing.T) {
	for _, name := range Names() {
		op, ok := Get(name)
		require.True(t, ok)
		assert.Equal(t, name == "ToPrimitive", op.TakesHint, name)
	}
}

func TestGetUnknown(t *testing.T) {
	_, ok := Get("ToNothing")
	assert.False(t, ok)
}

func TestParseHint(t *testing.T) {
	for in, want := range map[string]coerce.Hint{
		"":        coerce.HintDefault,
		"default": coerce.HintDefault,
		"number":  coerce.HintNumber,
		"string":  coerce.HintString,
	} {
		got, err := ParseHint(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseHint("bogus")
	assert.Error(t, err)
}

func TestScalarOpsWrapToNumbers(t *testing.T) {
	eng := coerce.New(nil)

	op, ok := Get("ToInt32")
	require.True(t, ok)
	out, err := op.Run(eng, value.Number(2147483648), coerce.HintDefault)
	require.NoError(t, err)
	f, err := out.Num()
	require.NoError(t, err)
	assert.Equal(t, -2147483648.0, f)

	op, ok = Get("ToUint8Clamp")
	require.True(t, ok)
	out, err = op.Run(eng, value.Number(2.5), coerce.HintDefault)
	require.NoError(t, err)
	f, _ = out.Num()
	assert.Equal(t, 2.0, f)
}

func TestBooleanOpNeverFails(t *testing.T) {
	eng := coerce.New(nil)
	op, ok := Get("ToBoolean")
	require.True(t, ok)
	out, err := op.Run(eng, value.Object(value.NewObj()), coerce.HintDefault)
	require.NoError(t, err)
	b, _ := out.Bool()
	assert.True(t, b)
}

func TestErrorsPropagate(t *testing.T) {
	eng := coerce.New(nil)
	op, _ := Get("ToNumber")
	_, err := op.Run(eng, value.NewSymbol(""), coerce.HintDefault)
	assert.Error(t, err)
}
