// Released under an MIT license. See LICENSE.

package interval

import (
	"math/big"
	"math/rand"

	"github.com/exactrat/ratio/pkg/rat"
)

// Enumerate returns every reduced fraction in the interval with a
// denominator of at most maxDen, in denominator-then-numerator order.
// Fractions are generated already in lowest terms, so each value
// appears exactly once.
func (i *T) Enumerate(maxDen int64) []*rat.T {
	var out []*rat.T

	p := new(big.Int)
	g := new(big.Int)

	for q := int64(1); q <= maxDen; q++ {
		den := big.NewInt(q)

		scale := rat.FromInt(den)

		lo := i.lo.Mul(scale).Ceil()
		hi := i.hi.Mul(scale).Floor()

		for p.Set(lo); p.Cmp(hi) <= 0; p.Add(p, one) {
			g.GCD(nil, nil, new(big.Int).Abs(p), den)

			if g.Cmp(one) != 0 {
				continue
			}

			v, _ := rat.FromBig(new(big.Int).Set(p), den)
			out = append(out, v)
		}
	}

	return out
}

// Sample returns a uniformly chosen reduced fraction in the interval
// with denominator at most maxDen. An interval that contains no such
// fraction is a *rat.RangeError.
func (i *T) Sample(rng *rand.Rand, maxDen int64) (*rat.T, error) {
	candidates := i.Enumerate(maxDen)
	if len(candidates) == 0 {
		return nil, &rat.RangeError{Op: "sample", Reason: "no fraction with the given denominator bound lies in the interval"}
	}

	return candidates[rng.Intn(len(candidates))], nil
}
