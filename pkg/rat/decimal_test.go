// Released under an MIT license. See LICENSE.

package rat_test

import (
	"testing"

	"github.com/exactrat/ratio/pkg/rat"
)

func TestRepeating(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1/3", "0.#3"},
		{"1/7", "0.#142857"},
		{"1/6", "0.1#6"},
		{"1/2", "0.5#0"},
		{"5", "5.#0"},
		{"-4/3", "-1.#3"},
		{"22/7", "3.#142857"},
		{"1/4", "0.25#0"},
		{"0", "0.#0"},
	}

	for _, c := range cases {
		got, err := rat.Decimal(rat.MustParse(c.in)).Repeating()
		if err != nil {
			t.Errorf("Repeating(%s): %v", c.in, err)

			continue
		}

		if got != c.want {
			t.Errorf("Repeating(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPeriodLen(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1/3", 1},
		{"1/7", 6},
		{"1/2", 0},
		{"3/40", 0},
		{"1/6", 1},
		{"1/17", 16},
		{"1/97", 96},
		{"7", 0},
	}

	for _, c := range cases {
		if got := rat.Decimal(rat.MustParse(c.in)).PeriodLen(); got != c.want {
			t.Errorf("PeriodLen(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPrefixLen(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1/3", 0},      // no factors of 2 or 5
		{"1/6", 1},      // one factor of 2
		{"1/40", 3},     // 2^3 * 5
		{"1/50", 2},     // 2 * 5^2
		{"3/125", 3},    // 5^3
		{"1/1", 0},      //
		{"7/4400", 4},   // 2^4 * 5^2 * 11
	}

	for _, c := range cases {
		if got := rat.Decimal(rat.MustParse(c.in)).PrefixLen(); got != c.want {
			t.Errorf("PrefixLen(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPeriodSentinel(t *testing.T) {
	d := rat.Decimal(rat.MustParse("1/97"))
	d.MaxPeriod = 10

	if got := d.PeriodLen(); got != -1 {
		t.Errorf("capped PeriodLen(1/97) = %d, want -1", got)
	}

	if _, err := d.Repeating(); err == nil {
		t.Error("Repeating with unknown period did not fail")
	} else if _, ok := err.(*rat.RangeError); !ok {
		t.Errorf("Repeating with unknown period: %v is not a *RangeError", err)
	}
}

func TestDigitsAreDecoupledFromPeriod(t *testing.T) {
	// Digit extraction is bounded by the request, so a capped view
	// can still produce digits.
	d := rat.Decimal(rat.MustParse("1/97"))
	d.MaxPeriod = 10

	if got := d.Digits(5); got != "01030" {
		t.Errorf("Digits(1/97, 5) = %q, want %q", got, "01030")
	}
}

func TestDigits(t *testing.T) {
	d := rat.Decimal(rat.MustParse("22/7"))

	if got := d.Digits(8); got != "14285714" {
		t.Errorf("Digits(22/7, 8) = %q", got)
	}

	if got := d.Whole().String(); got != "3" {
		t.Errorf("Whole(22/7) = %s", got)
	}

	if got := rat.Decimal(rat.MustParse("-22/7")).Whole().String(); got != "-3" {
		t.Errorf("Whole(-22/7) = %s", got)
	}
}

func TestScientific(t *testing.T) {
	cases := []struct {
		in    string
		sig   int
		want  string
		exact bool
	}{
		{"0", 5, "0E0", true},
		{"1500", 2, "1.5E3", true},
		{"1500", 5, "1.5000E3", true},
		{"-1/8", 4, "-1.250E-1", true},
		{"1/3", 5, "3.3333E-1", false},
		{"1/3", 10, "3.{3~9}E-1", false},
		{"22/7", 4, "3.142E0", false},
		{"1/6400", 5, "1.5625E-4", true},
		{"123456789", 3, "1.23E8", false},
	}

	for _, c := range cases {
		got, exact := rat.Decimal(rat.MustParse(c.in)).Scientific(c.sig)
		if got != c.want || exact != c.exact {
			t.Errorf("Scientific(%s, %d) = %q, %v; want %q, %v",
				c.in, c.sig, got, exact, c.want, c.exact)
		}
	}
}

type hexMapper struct{}

func (hexMapper) Radix() int { return 16 }

func (hexMapper) CharForDigit(d int) (rune, error) {
	const digits = "0123456789abcdef"

	return rune(digits[d]), nil
}

func (hexMapper) DigitForChar(c rune) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	default:
		return int(c-'a') + 10, nil
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"255", 0, "ff"},
		{"-26", 0, "-1a"},
		{"1/2", 4, "0.8000"},
		{"1/16", 2, "0.10"},
		{"43/16", 2, "2.b0"},
	}

	for _, c := range cases {
		got, err := rat.Decimal(rat.MustParse(c.in)).Text(hexMapper{}, c.n)
		if err != nil {
			t.Errorf("Text(%s): %v", c.in, err)

			continue
		}

		if got != c.want {
			t.Errorf("Text(%s, 16, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
