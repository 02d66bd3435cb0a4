// Released under an MIT license. See LICENSE.

package rat

import (
	"math/big"
	"strings"
)

// Mapper translates between digit values and characters for a
// positional base. It is consumed, not provided: callers wanting
// non-decimal output bring their own mapping.
type Mapper interface {
	Radix() int
	CharForDigit(d int) (rune, error)
	DigitForChar(c rune) (int, error)
}

// Text renders |x| in the mapper's base with n fractional digits,
// as "whole.fraction". The fraction is truncated, not rounded.
func (d *Dec) Text(m Mapper, n int) (string, error) {
	radix := m.Radix()
	if radix < 2 {
		return "", &RangeError{Op: "base conversion", Reason: "radix must be at least 2"}
	}

	d.metadata()

	base := big.NewInt(int64(radix))

	var b strings.Builder

	if d.neg {
		b.WriteByte('-')
	}

	whole, err := wholeText(d.whole, base, m)
	if err != nil {
		return "", err
	}

	b.WriteString(whole)

	if n < 1 {
		return b.String(), nil
	}

	b.WriteByte('.')

	rem := new(big.Int).Set(d.frac)
	q := new(big.Int)

	for i := 0; i < n; i++ {
		rem.Mul(rem, base)
		q.QuoRem(rem, d.den, rem)

		c, err := m.CharForDigit(int(q.Int64()))
		if err != nil {
			return "", err
		}

		b.WriteRune(c)
	}

	return b.String(), nil
}

func wholeText(w, base *big.Int, m Mapper) (string, error) {
	if w.Sign() == 0 {
		c, err := m.CharForDigit(0)
		if err != nil {
			return "", err
		}

		return string(c), nil
	}

	var digits []rune

	n := new(big.Int).Set(w)
	r := new(big.Int)

	for n.Sign() != 0 {
		n.QuoRem(n, base, r)

		c, err := m.CharForDigit(int(r.Int64()))
		if err != nil {
			return "", err
		}

		digits = append(digits, c)
	}

	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(digits[i])
	}

	return b.String(), nil
}
