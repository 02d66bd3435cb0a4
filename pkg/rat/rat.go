// Released under an MIT license. See LICENSE.

// Package rat provides exact arbitrary-precision rational numbers.
//
// A value is always stored reduced, with a positive denominator, and is
// never mutated after construction: every operation allocates its
// result. The package also provides two derived views of a value, the
// decimal expansion (Decimal) and the continued fraction (ContFrac).
package rat

import (
	"math/big"
)

// T wraps Go's big.Rat type.
//
// The invariants gcd(|numerator|, denominator) = 1, denominator > 0,
// and zero = 0/1 are maintained by construction.
type T big.Rat

// Zero, One and Ten are shared values. They must not be modified.
var (
	Zero = Int(0)
	One  = Int(1)
	Ten  = Int(10)
)

// Int creates the rational n/1.
func Int(n int64) *T {
	return Rat(new(big.Rat).SetInt64(n))
}

// New creates the rational num/den in lowest terms.
func New(num, den int64) (*T, error) {
	if den == 0 {
		return nil, ErrDivisionByZero
	}

	return Rat(new(big.Rat).SetFrac64(num, den)), nil
}

// FromBig creates the rational num/den in lowest terms.
func FromBig(num, den *big.Int) (*T, error) {
	if den.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return Rat(new(big.Rat).SetFrac(num, den)), nil
}

// FromInt creates the rational n/1.
func FromInt(n *big.Int) *T {
	return Rat(new(big.Rat).SetInt(n))
}

// Rat wraps the *big.Rat r. The caller must not retain r.
func Rat(r *big.Rat) *T {
	return (*T)(r)
}

// Rat returns the value of x as a *big.Rat.
func (x *T) Rat() *big.Rat {
	return (*big.Rat)(x)
}

// Num returns the numerator of x. It may be shared; do not modify.
func (x *T) Num() *big.Int {
	return x.Rat().Num()
}

// Den returns the denominator of x. It may be shared; do not modify.
func (x *T) Den() *big.Int {
	return x.Rat().Denom()
}

// Add returns x + y.
func (x *T) Add(y *T) *T {
	return Rat(new(big.Rat).Add(x.Rat(), y.Rat()))
}

// Sub returns x - y.
func (x *T) Sub(y *T) *T {
	return Rat(new(big.Rat).Sub(x.Rat(), y.Rat()))
}

// Mul returns x * y.
func (x *T) Mul(y *T) *T {
	return Rat(new(big.Rat).Mul(x.Rat(), y.Rat()))
}

// Div returns x / y, or ErrDivisionByZero if y is zero.
func (x *T) Div(y *T) (*T, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return Rat(new(big.Rat).Quo(x.Rat(), y.Rat())), nil
}

// Neg returns -x.
func (x *T) Neg() *T {
	return Rat(new(big.Rat).Neg(x.Rat()))
}

// Abs returns |x|.
func (x *T) Abs() *T {
	return Rat(new(big.Rat).Abs(x.Rat()))
}

// Inv returns 1/x, or ErrDivisionByZero if x is zero.
func (x *T) Inv() (*T, error) {
	if x.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return Rat(new(big.Rat).Inv(x.Rat())), nil
}

// Pow returns x**n for an integer exponent n.
//
// A zero base with a non-positive exponent is ErrUndefinedPower. A
// negative exponent is the reciprocal's positive power. The numerator
// and denominator are raised independently, so the cost is O(log n)
// multiplications.
func (x *T) Pow(n int64) (*T, error) {
	if n == 0 {
		if x.Sign() == 0 {
			return nil, ErrUndefinedPower
		}

		return One, nil
	}

	e := new(big.Int).SetInt64(n)

	neg := e.Sign() < 0
	if neg {
		if x.Sign() == 0 {
			return nil, ErrUndefinedPower
		}

		e.Neg(e)
	}

	num := new(big.Int).Exp(x.Num(), e, nil)
	den := new(big.Int).Exp(x.Den(), e, nil)

	if neg {
		num, den = den, num
	}

	return FromBig(num, den)
}

// Cmp compares x and y exactly and returns -1, 0, or +1.
func (x *T) Cmp(y *T) int {
	return x.Rat().Cmp(y.Rat())
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *T) Sign() int {
	return x.Rat().Sign()
}

// Equal returns true if x and y are the same rational.
func (x *T) Equal(y *T) bool {
	return x.Cmp(y) == 0
}

// IsInt returns true if the denominator of x is 1.
func (x *T) IsInt() bool {
	return x.Rat().IsInt()
}

// BitLen returns the larger of the numerator's and denominator's bit
// lengths. It bounds the cost of subsequent operations on x.
func (x *T) BitLen() int {
	n := x.Num().BitLen()
	if d := x.Den().BitLen(); d > n {
		return d
	}

	return n
}

// Float64 returns the nearest float64 and whether it is exact.
// It is for diagnostics only; nothing in this package branches on it.
func (x *T) Float64() (float64, bool) {
	return x.Rat().Float64()
}

// Mediant returns (a+c)/(b+d) for x = a/b and y = c/d.
func (x *T) Mediant(y *T) *T {
	num := new(big.Int).Add(x.Num(), y.Num())
	den := new(big.Int).Add(x.Den(), y.Den())

	// Denominators are positive so the sum cannot be zero.
	return Rat(new(big.Rat).SetFrac(num, den))
}

// Floor returns the largest integer not greater than x.
func (x *T) Floor() *big.Int {
	q, _ := floorDiv(x.Num(), x.Den())

	return q
}

// Ceil returns the smallest integer not less than x.
func (x *T) Ceil() *big.Int {
	return ceilDiv(x.Num(), x.Den())
}

// String returns x as "n" or "n/d".
func (x *T) String() string {
	return x.Rat().RatString()
}

// Rational is anything that can be treated as an exact rational.
type Rational interface {
	Rat() *big.Rat
}

// floorDiv returns the floor quotient and non-negative remainder of
// a/b. b must be positive.
func floorDiv(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(a, b, r)

	return q, r
}

// ceilDiv returns the ceiling quotient of a/b. b must be positive.
func ceilDiv(a, b *big.Int) *big.Int {
	q, r := floorDiv(a, b)
	if r.Sign() != 0 {
		q.Add(q, intOne)
	}

	return q
}

var (
	intOne = big.NewInt(1)
	intTen = big.NewInt(10)
)
