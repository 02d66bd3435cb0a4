// Released under an MIT license. See LICENSE.

package rat

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultMaxTerms is the default cap on continued-fraction expansion.
// A rational's expansion always terminates; the cap bounds the work
// for values with astronomically many terms.
const DefaultMaxTerms = 4096

// CF is the continued-fraction view of a rational: the canonical term
// sequence [a0; a1, a2, ...] and its convergents. The leading term
// carries the sign (it is the floor of the value); later terms are
// strictly positive; the sequence never ends in a term of 1, so each
// rational has exactly one representation.
//
// Like Dec, a CF is not safe for concurrent use.
type CF struct {
	x *T

	// MaxTerms caps the expansion.
	MaxTerms int

	expanded  bool
	truncated bool
	terms     []*big.Int
	p, q      []*big.Int // Convergent numerators and denominators.
}

// ContFrac returns the continued-fraction view of x.
func ContFrac(x *T) *CF {
	return &CF{x: x, MaxTerms: DefaultMaxTerms}
}

// FromTerms reconstructs the rational for a term sequence using the
// standard recurrence p_k = a_k*p_{k-1} + p_{k-2}, and likewise for q.
// Terms after the first must be positive.
func FromTerms(terms []*big.Int) (*T, error) {
	if len(terms) == 0 {
		return nil, &FormatError{Reason: "empty continued fraction"}
	}

	for _, a := range terms[1:] {
		if a.Sign() < 1 {
			return nil, &FormatError{
				Offending: a.String(),
				Reason:    "continued-fraction terms must be positive",
			}
		}
	}

	p, q := convergents(terms)

	return FromBig(p[len(p)-1], q[len(q)-1])
}

func (c *CF) expand() {
	if c.expanded {
		return
	}

	n := new(big.Int).Set(c.x.Num())
	d := new(big.Int).Set(c.x.Den())

	for {
		a, r := floorDiv(n, d)

		c.terms = append(c.terms, a)

		if r.Sign() == 0 {
			break
		}

		if len(c.terms) >= c.MaxTerms {
			c.truncated = true

			break
		}

		n, d = d, r
	}

	// Merge a trailing 1 into the previous term so the
	// representation is unique. The Euclidean expansion does not
	// produce one, but guard anyway.
	if last := len(c.terms) - 1; !c.truncated && last > 0 && c.terms[last].Cmp(intOne) == 0 {
		c.terms = c.terms[:last]
		c.terms[last-1].Add(c.terms[last-1], intOne)
	}

	c.p, c.q = convergents(c.terms)

	c.expanded = true
}

// Terms returns the term sequence. The returned slice is the caller's;
// the terms themselves must not be modified.
func (c *CF) Terms() []*big.Int {
	c.expand()

	terms := make([]*big.Int, len(c.terms))
	copy(terms, c.terms)

	return terms
}

// Len returns the number of terms.
func (c *CF) Len() int {
	c.expand()

	return len(c.terms)
}

// Exact reports whether the expansion completed within MaxTerms.
func (c *CF) Exact() bool {
	c.expand()

	return !c.truncated
}

// Convergent returns the best approximation p_k/q_k.
func (c *CF) Convergent(k int) (*T, error) {
	c.expand()

	if k < 0 || k >= len(c.terms) {
		return nil, &IndexError{Index: k, Len: len(c.terms)}
	}

	return FromBig(c.p[k], c.q[k])
}

// Value returns the value of the final convergent. When the expansion
// is exact this equals the original rational.
func (c *CF) Value() *T {
	c.expand()

	x, _ := FromBig(c.p[len(c.p)-1], c.q[len(c.q)-1])

	return x
}

// BestApproximation returns the last convergent whose denominator is
// at most maxDen. Convergents are optimal approximations at each
// denominator size, so no better rational with a denominator within
// the bound exists.
func (c *CF) BestApproximation(maxDen *big.Int) (*T, error) {
	if maxDen.Cmp(intOne) < 0 {
		return nil, fmt.Errorf("best approximation: maximum denominator %s is less than 1", maxDen)
	}

	c.expand()

	best := 0
	for k := 1; k < len(c.terms) && c.q[k].Cmp(maxDen) <= 0; k++ {
		best = k
	}

	return c.Convergent(best)
}

// String renders the term sequence as "a0.~a1~a2...". A single-term
// expansion is the plain integer.
func (c *CF) String() string {
	c.expand()

	var b strings.Builder

	b.WriteString(c.terms[0].String())

	for k, a := range c.terms[1:] {
		if k == 0 {
			b.WriteString(".~")
		} else {
			b.WriteByte('~')
		}

		b.WriteString(a.String())
	}

	return b.String()
}

func convergents(terms []*big.Int) (p, q []*big.Int) {
	// Seeded p_{-1} = 1, q_{-1} = 0; p_0 = a_0, q_0 = 1.
	pp, qp := intOne, new(big.Int)
	p0, q0 := terms[0], big.NewInt(1)

	p = append(p, p0)
	q = append(q, q0)

	for _, a := range terms[1:] {
		pk := new(big.Int).Mul(a, p0)
		pk.Add(pk, pp)

		qk := new(big.Int).Mul(a, q0)
		qk.Add(qk, qp)

		pp, qp = p0, q0
		p0, q0 = pk, qk

		p = append(p, pk)
		q = append(q, qk)
	}

	return p, q
}
