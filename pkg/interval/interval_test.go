// Released under an MIT license. See LICENSE.

package interval_test

import (
	"errors"
	"testing"

	"github.com/exactrat/ratio/pkg/interval"
	"github.com/exactrat/ratio/pkg/rat"
)

func span(t *testing.T, lo, hi string) *interval.T {
	t.Helper()

	return interval.New(rat.MustParse(lo), rat.MustParse(hi))
}

func check(t *testing.T, what string, got *interval.T, lo, hi string) {
	t.Helper()

	want := span(t, lo, hi)
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

func TestConstructionOrdersEndpoints(t *testing.T) {
	i := span(t, "3/4", "1/2")

	if got := i.Lo().String(); got != "1/2" {
		t.Errorf("Lo = %s, want 1/2", got)
	}

	if got := i.Hi().String(); got != "3/4" {
		t.Errorf("Hi = %s, want 3/4", got)
	}

	if !interval.Point(rat.One).IsPoint() {
		t.Error("Point(1) is not a point")
	}
}

func TestAddSub(t *testing.T) {
	i := span(t, "1/2", "3/4")
	j := span(t, "-1/4", "1/3")

	check(t, "add", i.Add(j), "1/4", "13/12")
	check(t, "sub", i.Sub(j), "1/6", "1")
	check(t, "neg", i.Neg(), "-3/4", "-1/2")
}

func TestMul(t *testing.T) {
	check(t, "mul",
		span(t, "1/2", "3/4").Mul(span(t, "2/3", "4/3")),
		"1/3", "1")

	// Sign-aware endpoint selection over all four products.
	check(t, "mul",
		span(t, "-2", "3").Mul(span(t, "-1", "4")),
		"-8", "12")

	check(t, "mul",
		span(t, "-3", "-2").Mul(span(t, "-5", "-4")),
		"8", "15")
}

func TestDiv(t *testing.T) {
	q, err := span(t, "1/2", "1").Div(span(t, "2", "4"))
	if err != nil {
		t.Fatalf("div: %v", err)
	}

	check(t, "div", q, "1/8", "1/2")

	for _, divisor := range []*interval.T{
		span(t, "-1/2", "1/2"),
		span(t, "0", "1"),
		span(t, "-1", "0"),
		interval.Point(rat.Zero),
	} {
		if _, err := span(t, "1", "2").Div(divisor); !errors.Is(err, rat.ErrDivisionByZero) {
			t.Errorf("div by %s: %v, want ErrDivisionByZero", divisor, err)
		}
	}
}

func TestDivMulSoundness(t *testing.T) {
	// (I / J) * J always contains I when J excludes zero.
	pairs := [][2]*interval.T{
		{span(t, "1/2", "3/4"), span(t, "2/3", "4/3")},
		{span(t, "-2", "3"), span(t, "1/3", "5")},
		{span(t, "-5", "-1"), span(t, "-4", "-2")},
	}

	for _, p := range pairs {
		i, j := p[0], p[1]

		q, err := i.Div(j)
		if err != nil {
			t.Fatalf("%s / %s: %v", i, j, err)
		}

		if back := q.Mul(j); !back.Contains(i) {
			t.Errorf("(%s / %s) * %s = %s does not contain %s", i, j, j, back, i)
		}
	}
}

func TestPow(t *testing.T) {
	cases := []struct {
		in     string
		lo, hi string
		n      int64
	}{
		{"2:3", "8", "27", 3},
		{"-2:3", "-8", "27", 3},
		{"-2:3", "0", "9", 2},
		{"-3:-2", "4", "9", 2},
		{"-3:-2", "-27", "-8", 3},
		{"2:3", "1", "1", 0},
		{"2:4", "1/16", "1/4", -2},
		{"-3:-2", "-1/2", "-1/3", -1},
	}

	for _, c := range cases {
		i := interval.MustParse(c.in)

		got, err := i.Pow(c.n)
		if err != nil {
			t.Fatalf("(%s)^%d: %v", c.in, c.n, err)
		}

		check(t, "pow", got, c.lo, c.hi)
	}

	if _, err := interval.MustParse("-1:1").Pow(0); !errors.Is(err, rat.ErrUndefinedPower) {
		t.Errorf("zero-straddling ^0: %v, want ErrUndefinedPower", err)
	}

	if _, err := interval.MustParse("0:2").Pow(0); !errors.Is(err, rat.ErrUndefinedPower) {
		t.Errorf("[0,2]^0: %v, want ErrUndefinedPower", err)
	}

	if _, err := interval.MustParse("-1:1").Pow(-2); !errors.Is(err, rat.ErrDivisionByZero) {
		t.Errorf("zero-straddling ^-2: %v, want ErrDivisionByZero", err)
	}
}

func TestMulPowIsWider(t *testing.T) {
	i := interval.MustParse("-2:3")

	p, err := i.Pow(2)
	if err != nil {
		t.Fatalf("pow: %v", err)
	}

	m, err := i.MulPow(2)
	if err != nil {
		t.Fatalf("mulpow: %v", err)
	}

	check(t, "mulpow", m, "-6", "9")

	if !m.Contains(p) {
		t.Errorf("MulPow %s does not contain Pow %s", m, p)
	}

	if _, err := i.MulPow(0); !errors.Is(err, rat.ErrUndefinedPower) {
		t.Errorf("MulPow(0): %v, want ErrUndefinedPower", err)
	}
}

func TestSetOperations(t *testing.T) {
	a := span(t, "0", "1")
	b := span(t, "1/2", "2")
	c := span(t, "3", "4")

	if !a.Overlaps(b) {
		t.Error("overlapping intervals reported disjoint")
	}

	if a.Overlaps(c) {
		t.Error("disjoint intervals overlap")
	}

	check(t, "intersection", a.Intersection(b), "1/2", "1")
	check(t, "union", a.Union(b), "0", "2")

	if a.Intersection(c) != nil {
		t.Error("disjoint intersection is not nil")
	}

	if a.Union(c) != nil {
		t.Error("non-contiguous union was approximated as an interval")
	}

	// Sharing exactly one endpoint is enough to merge.
	check(t, "touching union", a.Union(span(t, "1", "3/2")), "0", "3/2")

	if !b.Contains(span(t, "1", "2")) {
		t.Error("containment misreported")
	}

	if b.Contains(a) {
		t.Error("partial overlap reported as containment")
	}

	if !a.ContainsRat(rat.MustParse("1")) || a.ContainsRat(rat.MustParse("-1/10")) {
		t.Error("endpoint membership misreported")
	}
}

func TestLenMidpoint(t *testing.T) {
	i := span(t, "1/4", "3/4")

	if got := i.Len().String(); got != "1/2" {
		t.Errorf("Len = %s, want 1/2", got)
	}

	if got := i.Midpoint().String(); got != "1/2" {
		t.Errorf("Midpoint = %s, want 1/2", got)
	}
}
