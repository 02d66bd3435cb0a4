// Released under an MIT license. See LICENSE.

package interval

import (
	"math/big"
	"strings"

	"github.com/exactrat/ratio/pkg/rat"
)

// Parse converts interval text to an interval. On top of the point
// grammars accepted by rat.Parse (which become degenerate intervals)
// it accepts:
//
//	colon pair  lo:hi with any two point values
//	compact     base[lowDigits:highDigits]
//	relative    base[+hiDigits,-loDigits], either order
//	symmetric   base[+-digits] or base[-+digits]
//	decimal     -?[0-9]*.[0-9]+
//
// A plain decimal is ambiguous: it denotes the closed interval of
// half a unit in the last displayed place, so "1.23" is
// [1.225, 1.235]. A bare integer is an exact point. Bracket offsets
// and appended digits occupy the decimal places immediately after the
// base's last digit.
func Parse(s string) (*T, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, &rat.FormatError{Input: s, Reason: "empty input"}
	}

	if open := strings.IndexByte(t, '['); open >= 0 {
		if !strings.HasSuffix(t, "]") {
			return nil, &rat.FormatError{Input: t, Offending: t[open:], Reason: "unterminated range bracket"}
		}

		return parseBracket(t, t[:open], t[open+1:len(t)-1])
	}

	if colon := strings.IndexByte(t, ':'); colon >= 0 {
		return parsePair(t, t[:colon], t[colon+1:])
	}

	if ambiguousDecimal(t) {
		return parseAmbiguous(t)
	}

	x, err := rat.Parse(t)
	if err != nil {
		return nil, err
	}

	return Point(x), nil
}

// MustParse is Parse for known-good literals. It panics on error.
func MustParse(s string) *T {
	i, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}

	return i
}

func ambiguousDecimal(t string) bool {
	return strings.Contains(t, ".") &&
		!strings.Contains(t, "..") &&
		!strings.ContainsAny(t, "#~/")
}

func parseAmbiguous(t string) (*T, error) {
	x, err := rat.Parse(t)
	if err != nil {
		return nil, err
	}

	frac := len(t) - strings.IndexByte(t, '.') - 1

	// Half a unit in the place after the last displayed digit.
	h, _ := rat.FromBig(five, pow10(frac+1))

	return New(x.Sub(h), x.Add(h)), nil
}

func parsePair(input, lo, hi string) (*T, error) {
	l, err := rat.Parse(lo)
	if err != nil {
		return nil, err
	}

	h, err := rat.Parse(hi)
	if err != nil {
		return nil, err
	}

	return New(l, h), nil
}

func parseBracket(input, base, inner string) (*T, error) {
	if inner == "" {
		return nil, &rat.FormatError{Input: input, Offending: "[]", Reason: "empty range bracket"}
	}

	switch {
	case strings.HasPrefix(inner, "+-"), strings.HasPrefix(inner, "-+"):
		return parseSymmetric(input, base, inner[2:])
	case inner[0] == '+' || inner[0] == '-':
		return parseRelative(input, base, inner)
	default:
		return parseCompact(input, base, inner)
	}
}

func parseCompact(input, base, inner string) (*T, error) {
	colon := strings.IndexByte(inner, ':')
	if colon < 0 {
		return nil, &rat.FormatError{Input: input, Offending: inner, Reason: "expected ':' between range digits"}
	}

	lt, ht := inner[:colon], inner[colon+1:]
	if !isDigits(lt) || !isDigits(ht) {
		return nil, &rat.FormatError{Input: input, Offending: inner, Reason: "range digits must be decimal digits"}
	}

	// Appended digits extend the base's last digit run: "1.2[25:35]"
	// is 1.225 to 1.235, "1[5:25]" is 15 to 125.
	lo, err := rat.Parse(base + lt)
	if err != nil {
		return nil, err
	}

	hi, err := rat.Parse(base + ht)
	if err != nil {
		return nil, err
	}

	return New(lo, hi), nil
}

func parseSymmetric(input, base, digits string) (*T, error) {
	b, scale, err := parseBase(input, base)
	if err != nil {
		return nil, err
	}

	if !isDigits(digits) || digits == "" {
		return nil, &rat.FormatError{Input: input, Offending: digits, Reason: "expected offset digits"}
	}

	o := offset(digits, scale)

	return New(b.Sub(o), b.Add(o)), nil
}

func parseRelative(input, base, inner string) (*T, error) {
	b, scale, err := parseBase(input, base)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return nil, &rat.FormatError{Input: input, Offending: inner, Reason: "expected '+hi,-lo' offsets"}
	}

	var up, down string

	for _, part := range parts {
		switch {
		case strings.HasPrefix(part, "+") && up == "" && isDigits(part[1:]) && part[1:] != "":
			up = part[1:]
		case strings.HasPrefix(part, "-") && down == "" && isDigits(part[1:]) && part[1:] != "":
			down = part[1:]
		default:
			return nil, &rat.FormatError{Input: input, Offending: part, Reason: "expected one '+' and one '-' offset"}
		}
	}

	return New(b.Sub(offset(down, scale)), b.Add(offset(up, scale))), nil
}

// parseBase parses the text before the bracket and returns its value
// along with the offset scale 10^-(fb+1), where fb counts the base's
// fractional digits.
func parseBase(input, base string) (*rat.T, *rat.T, error) {
	if base == "" {
		return nil, nil, &rat.FormatError{Input: input, Reason: "relative range needs a base value"}
	}

	b, err := rat.Parse(base)
	if err != nil {
		return nil, nil, err
	}

	fb := 0
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		fb = len(base) - dot - 1
	}

	scale, _ := rat.FromInt(pow10(fb + 1)).Inv()

	return b, scale, nil
}

func offset(digits string, scale *rat.T) *rat.T {
	return rat.FromInt(digitsInt(digits)).Mul(scale)
}

func digitsInt(ds string) *big.Int {
	n := new(big.Int)
	if ds != "" {
		n.SetString(ds, 10)
	}

	return n
}

var five = big.NewInt(5)

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
