// Released under an MIT license. See LICENSE.

package rat

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned for a zero denominator or a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUndefinedPower is returned for 0 raised to zero or a negative power.
var ErrUndefinedPower = errors.New("undefined power")

// A FormatError describes text that does not match any numeral grammar.
type FormatError struct {
	Input     string // Full input, as given.
	Offending string // The substring that could not be scanned.
	Reason    string

	Err error // Underlying condition, if any.
}

func (e *FormatError) Error() string {
	if e.Offending == "" {
		return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
	}

	return fmt.Sprintf("cannot parse %q: %s at %q", e.Input, e.Reason, e.Offending)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// An IndexError reports access past the end of a computed sequence.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (length %d)", e.Index, e.Len)
}

// A RangeError reports a bounded computation that hit its safety limit,
// or a representation that does not exist in the requested form.
type RangeError struct {
	Op     string
	Reason string
}

func (e *RangeError) Error() string {
	return e.Op + ": " + e.Reason
}
