package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(src string) (inString []bool, depths []int) {
	s := New(src)
	for {
		if _, ok := s.Next(); !ok {
			return
		}
		inString = append(inString, s.InString())
		depths = append(depths, s.Depth())
	}
}

func TestTracksDoubleQuotedStrings(t *testing.T) {
	inString, _ := collect(`a"b"c`)
	assert.Equal(t, []bool{false, true, true, true, false}, inString)
}

func TestTracksSingleQuotedStrings(t *testing.T) {
	inString, _ := collect(`a'b'c`)
	assert.Equal(t, []bool{false, true, true, true, false}, inString)
}

func TestEscapedQuoteStaysInString(t *testing.T) {
	inString, _ := collect(`"a\"b"`)
	assert.Equal(t, []bool{true, true, true, true, true, true}, inString)
}

func TestQuotesInsideOtherQuotes(t *testing.T) {
	s := New(`"it's"`)
	for i := 0; i < 6; i++ {
		s.Next()
		assert.True(t, s.InString(), "byte %d", i)
	}
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestDepthTracking(t *testing.T) {
	_, depths := collect(`a(b[c{d}e]f)g`)
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3, 3, 2, 2, 1, 1, 0, 0}, depths)
}

func TestBracketsInsideStringsIgnored(t *testing.T) {
	_, depths := collect(`"([{"`)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, depths)
}

func TestPos(t *testing.T) {
	s := New("ab")
	assert.Equal(t, -1, s.Pos())
	s.Next()
	assert.Equal(t, 0, s.Pos())
	s.Next()
	assert.Equal(t, 1, s.Pos())
}
