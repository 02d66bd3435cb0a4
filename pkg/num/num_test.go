// Released under an MIT license. See LICENSE.

package num_test

import (
	"errors"
	"testing"

	"github.com/exactrat/ratio/pkg/num"
	"github.com/exactrat/ratio/pkg/rat"
)

func parse(t *testing.T, s string) num.N {
	t.Helper()

	n, err := num.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}

	return n
}

func TestParseLevels(t *testing.T) {
	cases := []struct {
		in   string
		kind num.Kind
		out  string
	}{
		{"7", num.Integer, "7"},
		{"-3", num.Integer, "-3"},
		{"4/2", num.Rational, "2"},
		{"1/3", num.Rational, "1/3"},
		{"0.#3", num.Rational, "1/3"},
		{"3.~7", num.Rational, "22/7"},
		{"1..1/2", num.Rational, "3/2"},
		{"1.5", num.Interval, "29/20:31/20"},
		{"1/2:3/4", num.Interval, "1/2:3/4"},
		{"1.23[+-5]", num.Interval, "49/40:247/200"},
	}

	for _, c := range cases {
		n := parse(t, c.in)

		if n.Kind() != c.kind {
			t.Errorf("Parse(%q) is %s, want %s", c.in, n.Kind(), c.kind)
		}

		if got := n.String(); got != c.out {
			t.Errorf("Parse(%q) = %s, want %s", c.in, got, c.out)
		}
	}

	if _, err := num.Parse("  "); err == nil {
		t.Error("Parse of blank input did not fail")
	}
}

func TestPromotion(t *testing.T) {
	cases := []struct {
		what string
		got  num.N
		kind num.Kind
		out  string
	}{
		{"2+3", parse(t, "2").Add(parse(t, "3")), num.Integer, "5"},
		{"2+1/3", parse(t, "2").Add(parse(t, "1/3")), num.Rational, "7/3"},
		{"2*(1:2)", parse(t, "2").Mul(parse(t, "1:2")), num.Interval, "2:4"},
		{"1/2-(0:1)", parse(t, "1/2").Sub(parse(t, "0:1")), num.Interval, "-1/2:1/2"},
		{"-(2/3)", parse(t, "2/3").Neg(), num.Rational, "-2/3"},
	}

	for _, c := range cases {
		if c.got.Kind() != c.kind {
			t.Errorf("%s is %s, want %s", c.what, c.got.Kind(), c.kind)
		}

		if got := c.got.String(); got != c.out {
			t.Errorf("%s = %s, want %s", c.what, got, c.out)
		}
	}
}

func TestDivPromotes(t *testing.T) {
	q, err := parse(t, "1").Div(parse(t, "2"))
	if err != nil {
		t.Fatalf("1/2: %v", err)
	}

	if q.Kind() != num.Rational || q.String() != "1/2" {
		t.Errorf("1 div 2 = %s (%s), want rational 1/2", q, q.Kind())
	}

	if _, err := parse(t, "1").Div(parse(t, "0")); !errors.Is(err, rat.ErrDivisionByZero) {
		t.Errorf("1 div 0: %v, want ErrDivisionByZero", err)
	}

	if _, err := parse(t, "1").Div(parse(t, "-1:1")); !errors.Is(err, rat.ErrDivisionByZero) {
		t.Errorf("1 div -1:1: %v, want ErrDivisionByZero", err)
	}
}

func TestPow(t *testing.T) {
	p, err := parse(t, "2").Pow(10)
	if err != nil {
		t.Fatalf("2^10: %v", err)
	}

	if p.Kind() != num.Integer || p.String() != "1024" {
		t.Errorf("2^10 = %s (%s), want integer 1024", p, p.Kind())
	}

	p, err = parse(t, "2").Pow(-1)
	if err != nil {
		t.Fatalf("2^-1: %v", err)
	}

	if p.Kind() != num.Rational || p.String() != "1/2" {
		t.Errorf("2^-1 = %s (%s), want rational 1/2", p, p.Kind())
	}

	if _, err := parse(t, "0").Pow(0); !errors.Is(err, rat.ErrUndefinedPower) {
		t.Errorf("0^0: %v, want ErrUndefinedPower", err)
	}

	p, err = parse(t, "-2:3").Pow(2)
	if err != nil {
		t.Fatalf("(-2:3)^2: %v", err)
	}

	if p.String() != "0:9" {
		t.Errorf("(-2:3)^2 = %s, want 0:9", p)
	}
}

func TestInterval(t *testing.T) {
	// A narrower value widens to a degenerate interval on demand.
	i := parse(t, "3/4").Interval()

	if !i.IsPoint() || i.Lo().String() != "3/4" {
		t.Errorf("3/4 widened to %s", i)
	}
}
