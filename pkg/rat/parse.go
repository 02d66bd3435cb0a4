// Released under an MIT license. See LICENSE.

package rat

import (
	"math/big"
	"strings"
)

// Parse converts numeral text to an exact rational. The accepted
// grammars are:
//
//	integer             -?[0-9]+
//	fraction            -?[0-9]+(/[0-9]+)?
//	mixed number        -?[0-9]+..[0-9]+/[0-9]+
//	terminating decimal -?[0-9]*.[0-9]+
//	repeating decimal   -?[0-9]*.[0-9]*#([0-9]+|0)
//	continued fraction  -?[0-9]+.~[0-9]+(~[0-9]+)*
//
// A plain decimal is exact here; reading it as a half-unit interval is
// the interval layer's policy. Anything else is a *FormatError.
func Parse(s string) (*T, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, &FormatError{Input: s, Reason: "empty input"}
	}

	switch {
	case strings.Contains(t, ".."):
		return parseMixed(t)
	case strings.Contains(t, "~"):
		return parseContinued(t)
	case strings.Contains(t, "#"):
		return parseRepeating(t)
	case strings.Contains(t, "."):
		return parseDecimal(t)
	case strings.Contains(t, "/"):
		return parseFraction(t)
	default:
		return parseInt(t)
	}
}

// MustParse is Parse for known-good literals. It panics on error.
func MustParse(s string) *T {
	x, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}

	return x
}

func parseInt(t string) (*T, error) {
	s := &scanner{input: t}

	neg := s.accept('-')

	ds := s.digits()
	if ds == "" || !s.eof() {
		return nil, s.fail("expected an integer")
	}

	return signed(neg, FromInt(digitsInt(ds))), nil
}

func parseFraction(t string) (*T, error) {
	s := &scanner{input: t}

	neg := s.accept('-')

	ns := s.digits()
	if ns == "" {
		return nil, s.fail("expected a numerator")
	}

	if !s.accept('/') {
		return nil, s.fail("expected '/'")
	}

	ds := s.digits()
	if ds == "" || !s.eof() {
		return nil, s.fail("expected a denominator")
	}

	den := digitsInt(ds)
	if den.Sign() == 0 {
		return nil, s.failWith("zero denominator", ErrDivisionByZero)
	}

	x, err := FromBig(digitsInt(ns), den)
	if err != nil {
		return nil, err
	}

	return signed(neg, x), nil
}

func parseMixed(t string) (*T, error) {
	s := &scanner{input: t}

	neg := s.accept('-')

	ws := s.digits()
	if ws == "" {
		return nil, s.fail("expected a whole part")
	}

	if !s.accept('.') || !s.accept('.') {
		return nil, s.fail("expected '..'")
	}

	ns := s.digits()
	if ns == "" || !s.accept('/') {
		return nil, s.fail("mixed number missing its fraction")
	}

	ds := s.digits()
	if ds == "" || !s.eof() {
		return nil, s.fail("mixed number missing its denominator")
	}

	den := digitsInt(ds)
	if den.Sign() == 0 {
		return nil, s.failWith("zero denominator", ErrDivisionByZero)
	}

	// w..n/d is w + n/d with the sign applied to the whole value.
	num := new(big.Int).Mul(digitsInt(ws), den)
	num.Add(num, digitsInt(ns))

	x, err := FromBig(num, den)
	if err != nil {
		return nil, err
	}

	return signed(neg, x), nil
}

func parseDecimal(t string) (*T, error) {
	s := &scanner{input: t}

	neg := s.accept('-')

	ws := s.digits()

	if !s.accept('.') {
		return nil, s.fail("expected '.'")
	}

	fs := s.digits()
	if fs == "" || !s.eof() {
		return nil, s.fail("expected fractional digits")
	}

	num := digitsInt(ws + fs)

	x, err := FromBig(num, pow10(len(fs)))
	if err != nil {
		return nil, err
	}

	return signed(neg, x), nil
}

func parseRepeating(t string) (*T, error) {
	s := &scanner{input: t}

	neg := s.accept('-')

	ws := s.digits()

	if !s.accept('.') {
		return nil, s.fail("expected '.' before the repeat marker")
	}

	as := s.digits()

	if !s.accept('#') {
		return nil, s.fail("expected '#'")
	}

	ps := s.digits()
	if ps == "" {
		return nil, s.fail("empty repeat payload")
	}

	if !s.eof() {
		return nil, s.fail("trailing characters after the repeat payload")
	}

	if ps == "0" {
		// Exact terminating value: digits / 10^count.
		x, err := FromBig(digitsInt(ws+as), pow10(len(as)))
		if err != nil {
			return nil, err
		}

		return signed(neg, x), nil
	}

	// With prefix length n and period length m the value is
	// (P - Q) / (10^n * (10^m - 1)).
	p := digitsInt(ws + as + ps)
	q := digitsInt(ws + as)

	num := new(big.Int).Sub(p, q)

	den := new(big.Int).Sub(pow10(len(ps)), intOne)
	den.Mul(den, pow10(len(as)))

	x, err := FromBig(num, den)
	if err != nil {
		return nil, err
	}

	return signed(neg, x), nil
}

func parseContinued(t string) (*T, error) {
	s := &scanner{input: t}

	neg := s.accept('-')

	ws := s.digits()
	if ws == "" {
		return nil, s.fail("expected a leading term")
	}

	a0 := digitsInt(ws)
	if neg {
		a0.Neg(a0)
	}

	terms := []*big.Int{a0}

	if !s.accept('.') || !s.accept('~') {
		return nil, s.fail("expected '.~'")
	}

	for {
		ds := s.digits()
		if ds == "" {
			return nil, s.fail("expected a continued-fraction term")
		}

		a := digitsInt(ds)
		if a.Sign() == 0 {
			return nil, s.fail("continued-fraction terms must be positive")
		}

		terms = append(terms, a)

		if s.eof() {
			break
		}

		if !s.accept('~') {
			return nil, s.fail("expected '~'")
		}
	}

	return FromTerms(terms)
}

func signed(neg bool, x *T) *T {
	if neg {
		return x.Neg()
	}

	return x
}

// digitsInt converts a (possibly empty) run of decimal digits.
func digitsInt(ds string) *big.Int {
	n := new(big.Int)
	if ds == "" {
		return n
	}

	n.SetString(ds, 10)

	return n
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(intTen, big.NewInt(int64(n)), nil)
}
