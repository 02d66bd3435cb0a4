// Released under an MIT license. See LICENSE.

package interval

import (
	"math/big"
	"math/bits"
	"strings"

	"github.com/exactrat/ratio/pkg/rat"
)

// ShortestDecimal returns the rational in the interval with the
// smallest power-of-base denominator. Among equally short candidates
// it picks the one closest to the midpoint, choosing the lower value
// on a tie.
//
// The trial exponent is bounded analytically by the interval length,
// so the search cannot run away; a point interval whose value has no
// power-of-base form at all is a *rat.RangeError.
func (i *T) ShortestDecimal(base int64) (*rat.T, error) {
	p, k, err := i.shortest(base)
	if err != nil {
		return nil, err
	}

	scale, _ := rat.FromInt(intPow(base, k)).Inv()

	return rat.FromInt(p).Mul(scale), nil
}

func (i *T) shortest(base int64) (*big.Int, int, error) {
	if base < 2 {
		return nil, 0, &rat.RangeError{Op: "shortest decimal", Reason: "base must be at least 2"}
	}

	if i.IsPoint() {
		return i.pointShortest(base)
	}

	length := i.Len()
	mid := i.Midpoint()

	// Smallest k with base**k >= 1/length, found from bit lengths,
	// plus margin. Overestimating only lengthens the loop bound.
	bitdiff := length.Den().BitLen() - length.Num().BitLen() + 1
	if bitdiff < 0 {
		bitdiff = 0
	}

	maxK := bitdiff/(bits.Len64(uint64(base))-1) + 2

	scale := rat.One
	baseRat := rat.Int(base)

	for k := 0; k <= maxK; k++ {
		loC := i.lo.Mul(scale).Ceil()
		hiF := i.hi.Mul(scale).Floor()

		if loC.Cmp(hiF) <= 0 {
			return nearest(mid.Mul(scale), loC, hiF), k, nil
		}

		scale = scale.Mul(baseRat)
	}

	return nil, 0, &rat.RangeError{Op: "shortest decimal", Reason: "search bound exceeded"}
}

// pointShortest handles a degenerate interval: the value itself must
// have a denominator dividing some power of the base.
func (i *T) pointShortest(base int64) (*big.Int, int, error) {
	baseInt := big.NewInt(base)

	d := new(big.Int).Set(i.lo.Den())

	for {
		g := new(big.Int).GCD(nil, nil, d, baseInt)
		if g.Cmp(one) == 0 {
			break
		}

		d.Quo(d, g)
	}

	if d.Cmp(one) != 0 {
		return nil, 0, &rat.RangeError{
			Op:     "shortest decimal",
			Reason: "value has no power-of-" + baseInt.String() + " denominator",
		}
	}

	scale := big.NewInt(1)
	r := new(big.Int)

	for k := 0; ; k++ {
		q := new(big.Int)
		q.QuoRem(scale, i.lo.Den(), r)

		if r.Sign() == 0 {
			p := new(big.Int).Mul(i.lo.Num(), q)

			return p, k, nil
		}

		scale.Mul(scale, baseInt)
	}
}

// nearest returns the integer in [lo, hi] closest to the rational
// target, preferring the lower value on a tie.
func nearest(target *rat.T, lo, hi *big.Int) *big.Int {
	// ceil(t - 1/2) rounds half down.
	p := target.Sub(half).Ceil()

	if p.Cmp(lo) < 0 {
		p = lo
	}

	if p.Cmp(hi) > 0 {
		p = hi
	}

	return p
}

// Compact renders the interval as base[lowDigits:highDigits]: both
// endpoints at the same decimal length, with the shared leading text
// factored out. Endpoints that do not terminate, or that share no
// usable prefix (for example when the signs differ), are a
// *rat.RangeError.
func (i *T) Compact() (string, error) {
	lod, hid := rat.Decimal(i.lo), rat.Decimal(i.hi)

	k, err := terminatingWidth(lod, hid)
	if err != nil {
		return "", err
	}

	los := decimalString(lod, k)
	his := decimalString(hid, k)

	shared := commonPrefix(los, his)

	// Leave at least one digit in each bracket slot.
	if shared == len(los) {
		shared--
	}

	lt, ht := los[shared:], his[shared:]
	if strings.ContainsAny(lt, "-.") || strings.ContainsAny(ht, "-.") {
		return "", &rat.RangeError{Op: "compact notation", Reason: "endpoints share no decimal prefix"}
	}

	return los[:shared] + "[" + lt + ":" + ht + "]", nil
}

// RelativeMidpoint renders the interval as midpoint[+-offset], with
// the offset digits scaled to the decimal place immediately after the
// base's last digit. The midpoint of an interval is equidistant from
// both endpoints, so this form is always symmetric.
func (i *T) RelativeMidpoint() (string, error) {
	return i.relative(i.Midpoint())
}

// RelativeShortest is RelativeMidpoint with the shortest-decimal
// representative instead of the midpoint; the offsets are generally
// asymmetric, giving base[+hi,-lo].
func (i *T) RelativeShortest() (string, error) {
	rep, err := i.ShortestDecimal(10)
	if err != nil {
		return "", err
	}

	return i.relative(rep)
}

func (i *T) relative(rep *rat.T) (string, error) {
	repd := rat.Decimal(rep)

	u := i.hi.Sub(rep) // rep is inside the interval, so u, v >= 0.
	v := rep.Sub(i.lo)

	ud, vd := rat.Decimal(u), rat.Decimal(v)

	if err := mustTerminate(repd, ud, vd); err != nil {
		return "", err
	}

	// Offset digits occupy the place after the base's last digit:
	// offset = digits * 10^-(fb+1). Pad the base until both offsets
	// are whole at that scale.
	fb := repd.PrefixLen()

	if n := ud.PrefixLen() - 1; n > fb {
		fb = n
	}

	if n := vd.PrefixLen() - 1; n > fb {
		fb = n
	}

	scale := rat.FromInt(pow10(fb + 1))

	un := u.Mul(scale).Num()
	vn := v.Mul(scale).Num()

	base := decimalString(repd, fb)

	if un.Cmp(vn) == 0 {
		return base + "[+-" + un.String() + "]", nil
	}

	return base + "[+" + un.String() + ",-" + vn.String() + "]", nil
}

// terminatingWidth returns the common digit width for rendering both
// endpoints, erroring unless both expansions terminate.
func terminatingWidth(lod, hid *rat.Dec) (int, error) {
	if err := mustTerminate(lod, hid); err != nil {
		return 0, err
	}

	k := lod.PrefixLen()
	if h := hid.PrefixLen(); h > k {
		k = h
	}

	return k, nil
}

func mustTerminate(ds ...*rat.Dec) error {
	for _, d := range ds {
		if d.PeriodLen() != 0 {
			return &rat.RangeError{Op: "decimal notation", Reason: "endpoint expansion does not terminate"}
		}
	}

	return nil
}

// decimalString renders the value with exactly k fractional digits.
// The expansion must terminate within k digits.
func decimalString(d *rat.Dec, k int) string {
	var b strings.Builder

	if d.Value().Sign() < 0 {
		b.WriteByte('-')
	}

	b.WriteString(new(big.Int).Abs(d.Whole()).String())

	if k > 0 {
		b.WriteByte('.')
		b.WriteString(d.Digits(k))
	}

	return b.String()
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

func intPow(base int64, k int) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(k)), nil)
}

func pow10(n int) *big.Int {
	return intPow(10, n)
}

var (
	one  = big.NewInt(1)
	half = rat.MustParse("1/2")
)
