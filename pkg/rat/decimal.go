// Released under an MIT license. See LICENSE.

package rat

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultMaxPeriod is the default cap on the period-length search.
const DefaultMaxPeriod = 10_000_000

// compressRun is the shortest identical-digit run that scientific
// notation compresses.
const compressRun = 6

// Dec is the decimal-expansion view of a rational. Metadata (prefix
// length, period length) is computed on demand and cached; digit
// extraction is separate and costs only the digits requested.
//
// A Dec is not safe for concurrent use. Two goroutines wanting the
// same expansion should each take their own view; recomputation is
// harmless.
type Dec struct {
	x *T

	// MaxPeriod caps the period-length search. Beyond it the period
	// length degrades to the sentinel -1.
	MaxPeriod int

	meta      bool // Metadata below is valid.
	neg       bool
	whole     *big.Int // |whole part|
	frac      *big.Int // |numerator| mod denominator
	den       *big.Int
	f2, f5    int
	prefixLen int
	stripped  *big.Int // Denominator with all factors of 2 and 5 removed.

	ordered   bool // periodLen is valid.
	periodLen int
}

// Decimal returns the decimal-expansion view of x.
func Decimal(x *T) *Dec {
	return &Dec{x: x, MaxPeriod: DefaultMaxPeriod}
}

// Value returns the rational this view was taken of.
func (d *Dec) Value() *T {
	return d.x
}

func (d *Dec) metadata() {
	if d.meta {
		return
	}

	d.neg = d.x.Sign() < 0
	d.den = d.x.Den()

	num := new(big.Int).Abs(d.x.Num())

	d.whole, d.frac = floorDiv(num, d.den)

	d.f2 = int(new(big.Int).Set(d.den).TrailingZeroBits())

	d.stripped = new(big.Int).Rsh(d.den, uint(d.f2))

	five, r := big.NewInt(5), new(big.Int)
	for {
		q := new(big.Int)
		q.QuoRem(d.stripped, five, r)

		if r.Sign() != 0 {
			break
		}

		d.f5++
		d.stripped = q
	}

	d.prefixLen = d.f2
	if d.f5 > d.prefixLen {
		d.prefixLen = d.f5
	}

	d.meta = true
}

// PrefixLen returns the length of the non-repeating fractional prefix:
// max(multiplicity of 2, multiplicity of 5) in the denominator.
func (d *Dec) PrefixLen() int {
	d.metadata()

	return d.prefixLen
}

// Whole returns the integer part of the value, truncated toward zero.
func (d *Dec) Whole() *big.Int {
	d.metadata()

	w := new(big.Int).Set(d.whole)
	if d.neg {
		w.Neg(w)
	}

	return w
}

// PeriodLen returns the length of the repeating period: 0 if the
// expansion terminates, or -1 if the period is proven longer than
// MaxPeriod. The length is the multiplicative order of 10 modulo the
// denominator's part coprime to 10, found by iterated modular
// multiplication; no digits are extracted.
func (d *Dec) PeriodLen() int {
	if d.ordered {
		return d.periodLen
	}

	d.metadata()

	d.periodLen = periodLength(d.stripped, d.MaxPeriod)
	d.ordered = true

	return d.periodLen
}

func periodLength(stripped *big.Int, max int) int {
	if stripped.Cmp(intOne) == 0 {
		return 0
	}

	pow := new(big.Int).Mod(intTen, stripped)

	for k := 1; k <= max; k++ {
		if pow.Cmp(intOne) == 0 {
			return k
		}

		pow.Mul(pow, intTen)
		pow.Mod(pow, stripped)
	}

	return -1
}

// Digits returns the first n fractional digits of |x| by long
// division. It needs no period knowledge and never searches.
func (d *Dec) Digits(n int) string {
	d.metadata()

	var b strings.Builder
	b.Grow(n)

	rem := new(big.Int).Set(d.frac)
	q := new(big.Int)

	for i := 0; i < n; i++ {
		rem.Mul(rem, intTen)
		q.QuoRem(rem, d.den, rem)
		b.WriteByte(byte('0' + q.Int64()))
	}

	return b.String()
}

// Repeating renders the canonical repeating-decimal form
// "whole.prefix#period". A terminating expansion gets the explicit
// marker "#0"; integers render as "n.#0". If the period length is
// unknown (sentinel -1) a *RangeError is returned rather than
// truncating silently.
func (d *Dec) Repeating() (string, error) {
	p := d.PeriodLen()
	if p < 0 {
		return "", &RangeError{
			Op:     "repeating decimal",
			Reason: "period exceeds " + strconv.Itoa(d.MaxPeriod) + " digits",
		}
	}

	all := d.Digits(d.prefixLen + p)

	var b strings.Builder

	if d.neg {
		b.WriteByte('-')
	}

	b.WriteString(d.whole.String())
	b.WriteByte('.')
	b.WriteString(all[:d.prefixLen])
	b.WriteByte('#')

	if p == 0 {
		b.WriteByte('0')
	} else {
		b.WriteString(all[d.prefixLen:])
	}

	return b.String(), nil
}

// Scientific renders the value as "d.dddEk" with sig significant
// digits. The second result reports whether the rendering is exact;
// a false result means the expansion continues past the digits shown.
// Runs of six or more identical digits after the leading digit are
// compressed as "{d~n}", which is reversible and changes nothing
// about the value displayed.
func (d *Dec) Scientific(sig int) (string, bool) {
	if sig < 1 {
		sig = 1
	}

	d.metadata()

	if d.x.Sign() == 0 {
		return "0E0", true
	}

	var stream string // Significant digits, no point.
	var exp int       // Exponent of the leading digit.
	var rest bool     // Nonzero digits remain beyond the stream.

	if d.whole.Sign() > 0 {
		ws := d.whole.String()
		exp = len(ws) - 1

		if sig <= len(ws) {
			stream = ws[:sig]
			rest = !allZero(ws[sig:]) || d.frac.Sign() != 0
		} else {
			fr := d.Digits(sig - len(ws))
			stream = ws + fr
			rest = d.fracContinuesPast(sig - len(ws))
		}
	} else {
		// Skip leading fractional zeros to the first significant
		// digit.
		lead := 0

		rem := new(big.Int).Set(d.frac)
		q := new(big.Int)

		for {
			rem.Mul(rem, intTen)
			q.QuoRem(rem, d.den, rem)

			if q.Sign() != 0 {
				break
			}

			lead++
		}

		exp = -(lead + 1)

		all := d.Digits(lead + sig)
		stream = all[lead:]
		rest = d.fracContinuesPast(lead + sig)
	}

	var b strings.Builder

	if d.neg {
		b.WriteByte('-')
	}

	b.WriteByte(stream[0])

	if len(stream) > 1 {
		b.WriteByte('.')
		b.WriteString(compressRuns(stream[1:]))
	}

	b.WriteByte('E')
	b.WriteString(strconv.Itoa(exp))

	return b.String(), !rest
}

// fracContinuesPast reports whether nonzero fractional digits exist
// beyond position n.
func (d *Dec) fracContinuesPast(n int) bool {
	if d.frac.Sign() == 0 {
		return false
	}

	if d.PeriodLen() != 0 {
		// Non-terminating (or unknown): digits never run out.
		return true
	}

	return n < d.prefixLen && !allZero(d.Digits(d.prefixLen)[n:])
}

func allZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}

	return true
}

// compressRuns rewrites runs of compressRun or more identical digits
// as {d~n}.
func compressRuns(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}

		if n := j - i; n >= compressRun {
			b.WriteByte('{')
			b.WriteByte(s[i])
			b.WriteByte('~')
			b.WriteString(strconv.Itoa(n))
			b.WriteByte('}')
		} else {
			b.WriteString(s[i:j])
		}

		i = j
	}

	return b.String()
}
