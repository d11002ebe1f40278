package doc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/coerce/ops"
)

func TestLookupExact(t *testing.T) {
	op, ok := Lookup("ToNumber")
	require.True(t, ok)
	assert.Equal(t, "ToNumber", op.Name)
}

func TestLookupCaseInsensitive(t *testing.T) {
	op, ok := Lookup("tonumber")
	require.True(t, ok)
	assert.Equal(t, "ToNumber", op.Name)

	op, ok = Lookup("TOBIGINT64")
	require.True(t, ok)
	assert.Equal(t, "ToBigInt64", op.Name)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("ToNothing")
	assert.False(t, ok)
}

func TestSignature(t *testing.T) {
	num, _ := ops.Get("ToNumber")
	assert.Equal(t, "ToNumber(value)", Signature(num))

	prim, _ := ops.Get("ToPrimitive")
	assert.Equal(t, "ToPrimitive(value, hint)", Signature(prim))
}

func TestSummaryIsFirstSentence(t *testing.T) {
	num, _ := ops.Get("ToNumber")
	sum := Summary(num)
	assert.True(t, strings.HasSuffix(sum, "."))
	assert.NotContains(t, sum[:len(sum)-1], ". ")
}

func TestFormatOp(t *testing.T) {
	num, _ := ops.Get("ToNumber")
	out := FormatOp(num, 80)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "ToNumber(value)", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "    "))
		assert.LessOrEqual(t, len(line), 80)
	}
}

func TestFormatAllListsEveryOp(t *testing.T) {
	out := FormatAll()
	for _, name := range ops.Names() {
		assert.Contains(t, out, name+"(")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four", 9)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	assert.Equal(t, []string{"unbroken text"}, wrap("unbroken text", 0))
}
