// Package scanner provides string-boundary-aware scanning for operation
// invocations like ToPrimitive({valueOf: "a,b"}, number). It tracks
// double- and single-quoted string literals, escape sequences and
// bracket nesting, so callers can split on commas and parentheses
// without re-implementing quote handling.
package scanner

// Scanner iterates byte-by-byte over source text, tracking string
// literal boundaries and bracket depth. InString() returns true for the
// entire string span including both delimiters.
type Scanner struct {
	src     string
	pos     int
	inDbl   bool
	inSgl   bool
	escaped bool
	closing bool // the byte just returned closed a string
	depth   int  // (), [] and {} nesting outside strings
}

// New creates a Scanner for the given source text. Call Next() to
// advance to the first byte.
func New(src string) *Scanner {
	return &Scanner{src: src, pos: -1}
}

// Next advances to the next byte, updating string, escape and depth
// state. Returns the byte and true, or (0, false) at end of input.
func (s *Scanner) Next() (byte, bool) {
	s.closing = false
	s.pos++
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]

	if s.escaped {
		s.escaped = false
		return ch, true
	}
	if ch == '\\' && (s.inDbl || s.inSgl) {
		s.escaped = true
		return ch, true
	}

	switch ch {
	case '"':
		if !s.inSgl {
			s.closing = s.inDbl
			s.inDbl = !s.inDbl
		}
	case '\'':
		if !s.inDbl {
			s.closing = s.inSgl
			s.inSgl = !s.inSgl
		}
	case '(', '[', '{':
		if !s.inDbl && !s.inSgl {
			s.depth++
		}
	case ')', ']', '}':
		if !s.inDbl && !s.inSgl {
			s.depth--
		}
	}
	return ch, true
}

// InString reports whether the current position is inside a string
// literal, including both the opening and closing delimiter.
func (s *Scanner) InString() bool {
	return s.inDbl || s.inSgl || s.closing
}

// Depth returns the current bracket nesting depth. The closing bracket
// itself is already counted, so a byte at Depth 0 sits outside all
// brackets.
func (s *Scanner) Depth() int { return s.depth }

// Pos returns the current byte offset (the position of the last byte
// returned by Next). Returns -1 before the first call to Next.
func (s *Scanner) Pos() int { return s.pos }
