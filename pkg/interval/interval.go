// Released under an MIT license. See LICENSE.

// Package interval provides closed intervals of exact rationals.
//
// An interval is the set of all rationals between its endpoints,
// inclusive. Construction orders the endpoints, so an interval is
// never empty or inverted, and values are immutable.
package interval

import (
	"math"

	"github.com/exactrat/ratio/pkg/rat"
)

// T is a closed rational interval with lo <= hi.
type T struct {
	lo, hi *rat.T
}

// Unit is the interval [0, 1]. It must not be modified.
var Unit = New(rat.Zero, rat.One)

// New creates the closed interval between a and b, swapping the
// endpoints if they arrive out of order.
func New(a, b *rat.T) *T {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}

	return &T{lo: a, hi: b}
}

// Point creates the degenerate interval [x, x].
func Point(x *rat.T) *T {
	return &T{lo: x, hi: x}
}

// Lo returns the lower endpoint.
func (i *T) Lo() *rat.T {
	return i.lo
}

// Hi returns the upper endpoint.
func (i *T) Hi() *rat.T {
	return i.hi
}

// IsPoint reports whether the endpoints coincide.
func (i *T) IsPoint() bool {
	return i.lo.Equal(i.hi)
}

// Equal returns true if i and j have the same endpoints.
func (i *T) Equal(j *T) bool {
	return i.lo.Equal(j.lo) && i.hi.Equal(j.hi)
}

// Len returns hi - lo.
func (i *T) Len() *rat.T {
	return i.hi.Sub(i.lo)
}

// Midpoint returns (lo + hi) / 2.
func (i *T) Midpoint() *rat.T {
	m, _ := i.lo.Add(i.hi).Div(two)

	return m
}

// Add returns [lo+lo', hi+hi'].
func (i *T) Add(j *T) *T {
	return &T{lo: i.lo.Add(j.lo), hi: i.hi.Add(j.hi)}
}

// Sub returns [lo-hi', hi-lo'].
func (i *T) Sub(j *T) *T {
	return &T{lo: i.lo.Sub(j.hi), hi: i.hi.Sub(j.lo)}
}

// Neg returns [-hi, -lo].
func (i *T) Neg() *T {
	return &T{lo: i.hi.Neg(), hi: i.lo.Neg()}
}

// Mul returns the product interval: the min and max over the four
// endpoint products. Each product is exact, so there is no
// overestimation.
func (i *T) Mul(j *T) *T {
	return span(
		i.lo.Mul(j.lo),
		i.lo.Mul(j.hi),
		i.hi.Mul(j.lo),
		i.hi.Mul(j.hi),
	)
}

// Div returns the quotient interval. A divisor that contains zero
// anywhere in its closed range, endpoints included, is rejected with
// rat.ErrDivisionByZero: its reciprocal would be unbounded.
func (i *T) Div(j *T) (*T, error) {
	if j.ContainsRat(rat.Zero) {
		return nil, rat.ErrDivisionByZero
	}

	a, _ := i.lo.Div(j.lo)
	b, _ := i.lo.Div(j.hi)
	c, _ := i.hi.Div(j.lo)
	d, _ := i.hi.Div(j.hi)

	return span(a, b, c, d), nil
}

// Pow returns the interval of x**n over x in i.
//
// An even exponent on a zero-straddling interval has minimum 0 and
// maximum the larger endpoint power; an even exponent on a negative
// interval reverses the endpoints. Exponent 0 on a zero-containing
// interval is rejected (rat.ErrUndefinedPower). A negative exponent
// goes through the reciprocal, so it requires an interval that does
// not contain zero.
func (i *T) Pow(n int64) (*T, error) {
	if n == 0 {
		if i.ContainsRat(rat.Zero) {
			return nil, rat.ErrUndefinedPower
		}

		return Point(rat.One), nil
	}

	if n < 0 {
		inv, err := i.reciprocal()
		if err != nil {
			return nil, err
		}

		if n == math.MinInt64 {
			return nil, &rat.RangeError{Op: "interval power", Reason: "exponent out of range"}
		}

		return inv.Pow(-n)
	}

	if n%2 != 0 {
		return powEnds(i.lo, i.hi, n)
	}

	switch {
	case i.lo.Sign() >= 0:
		return powEnds(i.lo, i.hi, n)
	case i.hi.Sign() <= 0:
		return powEnds(i.hi, i.lo, n)
	}

	// Straddles zero: the minimum is 0, the maximum the larger of
	// the two endpoint powers.
	l, err := i.lo.Pow(n)
	if err != nil {
		return nil, err
	}

	h, err := i.hi.Pow(n)
	if err != nil {
		return nil, err
	}

	if l.Cmp(h) > 0 {
		h = l
	}

	return &T{lo: rat.Zero, hi: h}, nil
}

// MulPow returns i multiplied by itself n times. This is deliberately
// different from Pow: repeated self-multiplication treats each factor
// as independent, so the result is generally wider. Exponent 0 is
// rejected.
func (i *T) MulPow(n int64) (*T, error) {
	if n == 0 {
		return nil, rat.ErrUndefinedPower
	}

	if n < 0 {
		inv, err := i.reciprocal()
		if err != nil {
			return nil, err
		}

		if n == math.MinInt64 {
			return nil, &rat.RangeError{Op: "interval power", Reason: "exponent out of range"}
		}

		return inv.MulPow(-n)
	}

	acc := i
	for k := int64(1); k < n; k++ {
		acc = acc.Mul(i)
	}

	return acc, nil
}

// ContainsRat returns true if x lies in the closed interval.
func (i *T) ContainsRat(x *rat.T) bool {
	return i.lo.Cmp(x) <= 0 && x.Cmp(i.hi) <= 0
}

// Contains returns true if j lies entirely within i.
func (i *T) Contains(j *T) bool {
	return i.lo.Cmp(j.lo) <= 0 && j.hi.Cmp(i.hi) <= 0
}

// Overlaps returns true if i and j share at least one point.
func (i *T) Overlaps(j *T) bool {
	return i.lo.Cmp(j.hi) <= 0 && j.lo.Cmp(i.hi) <= 0
}

// Intersection returns the interval common to i and j, or nil if they
// are disjoint.
func (i *T) Intersection(j *T) *T {
	if !i.Overlaps(j) {
		return nil
	}

	lo := i.lo
	if j.lo.Cmp(lo) > 0 {
		lo = j.lo
	}

	hi := i.hi
	if j.hi.Cmp(hi) < 0 {
		hi = j.hi
	}

	return &T{lo: lo, hi: hi}
}

// Union returns the interval covering i and j, or nil if they neither
// overlap nor share an endpoint: a non-contiguous union is not an
// interval and is never silently approximated as one.
func (i *T) Union(j *T) *T {
	if !i.Overlaps(j) {
		return nil
	}

	lo := i.lo
	if j.lo.Cmp(lo) < 0 {
		lo = j.lo
	}

	hi := i.hi
	if j.hi.Cmp(hi) > 0 {
		hi = j.hi
	}

	return &T{lo: lo, hi: hi}
}

// String renders the interval as "lo:hi".
func (i *T) String() string {
	return i.lo.String() + ":" + i.hi.String()
}

func (i *T) reciprocal() (*T, error) {
	if i.ContainsRat(rat.Zero) {
		return nil, rat.ErrDivisionByZero
	}

	lo, err := i.hi.Inv()
	if err != nil {
		return nil, err
	}

	hi, err := i.lo.Inv()
	if err != nil {
		return nil, err
	}

	return &T{lo: lo, hi: hi}, nil
}

// powEnds maps the endpoints directly: [a**n, b**n].
func powEnds(a, b *rat.T, n int64) (*T, error) {
	l, err := a.Pow(n)
	if err != nil {
		return nil, err
	}

	h, err := b.Pow(n)
	if err != nil {
		return nil, err
	}

	return &T{lo: l, hi: h}, nil
}

func span(vs ...*rat.T) *T {
	lo, hi := vs[0], vs[0]

	for _, v := range vs[1:] {
		if v.Cmp(lo) < 0 {
			lo = v
		}

		if v.Cmp(hi) > 0 {
			hi = v
		}
	}

	return &T{lo: lo, hi: hi}
}

var two = rat.Int(2)
