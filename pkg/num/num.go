// Released under an MIT license. See LICENSE.

// Package num provides the tagged union over the three numeric
// levels: integer, rational, and interval.
//
// The promotion table is fixed: integers widen to rationals, and
// rationals widen to degenerate intervals. A binary operation promotes
// the narrower operand once and then dispatches; nothing is decided
// per operation at run time beyond the single kind switch.
package num

import (
	"math/big"
	"strings"

	"github.com/exactrat/ratio/pkg/interval"
	"github.com/exactrat/ratio/pkg/rat"
)

// Kind is a numeric level.
type Kind int

const (
	Integer Kind = iota
	Rational
	Interval
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	default:
		return "interval"
	}
}

// N carries a value at exactly one numeric level.
type N struct {
	kind Kind

	i *big.Int
	r *rat.T
	v *interval.T
}

// The rational kernel satisfies the Rational interface the union
// consumes.
var _ rat.Rational = (*rat.T)(nil)

// FromInt wraps n as an integer-level value.
func FromInt(n *big.Int) N {
	return N{kind: Integer, i: n}
}

// FromInt64 wraps n as an integer-level value.
func FromInt64(n int64) N {
	return FromInt(big.NewInt(n))
}

// FromRat wraps x as a rational-level value.
func FromRat(x *rat.T) N {
	return N{kind: Rational, r: x}
}

// FromRational wraps anything that can produce a *big.Rat.
func FromRational(x rat.Rational) N {
	return FromRat(rat.Rat(new(big.Rat).Set(x.Rat())))
}

// FromInterval wraps i as an interval-level value.
func FromInterval(i *interval.T) N {
	return N{kind: Interval, v: i}
}

// Parse converts text at the level its grammar implies: an integer
// stays an integer, fraction/mixed/repeating/continued-fraction forms
// are rationals, and plain decimals and range notations are intervals.
func Parse(s string) (N, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return N{}, &rat.FormatError{Input: s, Reason: "empty input"}
	}

	switch {
	case strings.ContainsAny(t, "[:"):
		i, err := interval.Parse(t)
		if err != nil {
			return N{}, err
		}

		return FromInterval(i), nil
	case strings.Contains(t, ".."),
		strings.ContainsAny(t, "#~/"):
		x, err := rat.Parse(t)
		if err != nil {
			return N{}, err
		}

		return FromRat(x), nil
	case strings.Contains(t, "."):
		i, err := interval.Parse(t)
		if err != nil {
			return N{}, err
		}

		return FromInterval(i), nil
	default:
		x, err := rat.Parse(t)
		if err != nil {
			return N{}, err
		}

		return FromInt(x.Num()), nil
	}
}

// Kind returns the numeric level of n.
func (n N) Kind() Kind {
	return n.kind
}

// Int returns the integer payload. It is only meaningful when
// Kind() == Integer.
func (n N) Int() *big.Int {
	return n.i
}

// Rat returns the value widened to a rational. Interval-level values
// have no single rational; the call panics for them.
func (n N) Rat() *rat.T {
	switch n.kind {
	case Integer:
		return rat.FromInt(n.i)
	case Rational:
		return n.r
	default:
		panic("an interval cannot be used as a single number")
	}
}

// Interval returns the value widened to an interval.
func (n N) Interval() *interval.T {
	if n.kind == Interval {
		return n.v
	}

	return interval.Point(n.Rat())
}

// String renders the value in its level's canonical form.
func (n N) String() string {
	switch n.kind {
	case Integer:
		return n.i.String()
	case Rational:
		return n.r.String()
	default:
		return n.v.String()
	}
}

// wider returns the wider of the two levels.
func wider(a, b Kind) Kind {
	if b > a {
		return b
	}

	return a
}

// Add returns a + b at the wider of the two levels.
func (a N) Add(b N) N {
	switch wider(a.kind, b.kind) {
	case Integer:
		return FromInt(new(big.Int).Add(a.i, b.i))
	case Rational:
		return FromRat(a.Rat().Add(b.Rat()))
	default:
		return FromInterval(a.Interval().Add(b.Interval()))
	}
}

// Sub returns a - b at the wider of the two levels.
func (a N) Sub(b N) N {
	switch wider(a.kind, b.kind) {
	case Integer:
		return FromInt(new(big.Int).Sub(a.i, b.i))
	case Rational:
		return FromRat(a.Rat().Sub(b.Rat()))
	default:
		return FromInterval(a.Interval().Sub(b.Interval()))
	}
}

// Mul returns a * b at the wider of the two levels.
func (a N) Mul(b N) N {
	switch wider(a.kind, b.kind) {
	case Integer:
		return FromInt(new(big.Int).Mul(a.i, b.i))
	case Rational:
		return FromRat(a.Rat().Mul(b.Rat()))
	default:
		return FromInterval(a.Interval().Mul(b.Interval()))
	}
}

// Div returns a / b. Integer operands promote to rationals: division
// is not closed over the integers.
func (a N) Div(b N) (N, error) {
	if wider(a.kind, b.kind) == Interval {
		v, err := a.Interval().Div(b.Interval())
		if err != nil {
			return N{}, err
		}

		return FromInterval(v), nil
	}

	x, err := a.Rat().Div(b.Rat())
	if err != nil {
		return N{}, err
	}

	return FromRat(x), nil
}

// Neg returns -a at a's level.
func (a N) Neg() N {
	switch a.kind {
	case Integer:
		return FromInt(new(big.Int).Neg(a.i))
	case Rational:
		return FromRat(a.r.Neg())
	default:
		return FromInterval(a.v.Neg())
	}
}

// Pow returns a**e. An integer base with a non-negative exponent stays
// an integer; a negative exponent promotes to the rational level.
func (a N) Pow(e int64) (N, error) {
	switch a.kind {
	case Integer:
		if e >= 0 {
			if a.i.Sign() == 0 && e == 0 {
				return N{}, rat.ErrUndefinedPower
			}

			return FromInt(new(big.Int).Exp(a.i, big.NewInt(e), nil)), nil
		}

		fallthrough
	case Rational:
		x, err := a.Rat().Pow(e)
		if err != nil {
			return N{}, err
		}

		return FromRat(x), nil
	default:
		v, err := a.v.Pow(e)
		if err != nil {
			return N{}, err
		}

		return FromInterval(v), nil
	}
}
