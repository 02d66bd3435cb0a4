// Released under an MIT license. See LICENSE.

package rat

// scanner is a cursor over a numeral being parsed. It is a reduced
// form of a lexical scanner: numerals are regular, arrive whole, and
// produce at most one value, so a single forward pass is enough.
type scanner struct {
	input string // Buffer being scanned.
	index int    // Index of the current byte.
}

func (s *scanner) eof() bool {
	return s.index >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.input[s.index]
}

// accept consumes c if it is the current byte.
func (s *scanner) accept(c byte) bool {
	if s.peek() != c {
		return false
	}

	s.index++

	return true
}

// digits consumes and returns a run of decimal digits, which may be
// empty.
func (s *scanner) digits() string {
	first := s.index

	for !s.eof() && s.input[s.index] >= '0' && s.input[s.index] <= '9' {
		s.index++
	}

	return s.input[first:s.index]
}

// fail produces a FormatError naming the unconsumed input.
func (s *scanner) fail(reason string) *FormatError {
	return &FormatError{
		Input:     s.input,
		Offending: s.input[s.index:],
		Reason:    reason,
	}
}

func (s *scanner) failWith(reason string, err error) *FormatError {
	e := s.fail(reason)
	e.Err = err

	return e
}
