package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Style is a notation for displaying numbers.
type Style int8

const (
	// Regular shows up to 18 decimal places with trailing zeros removed,
	// switching to Scientific for very large or very small magnitudes.
	Regular Style = iota
	// Fixed shows exactly six decimal places.
	Fixed
	// Scientific shows a mantissa with 12 decimal places and an exponent.
	Scientific
	// Engineering is exponential notation with the exponent a multiple of 3.
	Engineering
	// GroupedTriads is Regular without the switch to Scientific, and with
	// the integer digits grouped in threes by commas.
	GroupedTriads
)

const (
	// ErrorOverflow is the display text for infinite values.
	ErrorOverflow = "Error: Overflow"
	// ErrorInvalid is the display text for NaN.
	ErrorInvalid = "Error: Invalid"
)

var stylenames = [...]string{
	Regular:       "regular",
	Fixed:         "fixed",
	Scientific:    "scientific",
	Engineering:   "engineering",
	GroupedTriads: "triads",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(stylenames) {
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
	return stylenames[s]
}

// ParseStyle parses the name of a display style, as returned by
// Style.String, in any case. "sci", "eng", and "grouped" are also accepted.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "regular":
		return Regular, nil
	case "fixed":
		return Fixed, nil
	case "scientific", "sci":
		return Scientific, nil
	case "engineering", "eng":
		return Engineering, nil
	case "triads", "grouped":
		return GroupedTriads, nil
	default:
		return 0, &NameError{Kind: "display style", Name: name}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Format renders v in the given style. Infinities render as ErrorOverflow
// and NaN as ErrorInvalid regardless of style.
func Format(v float64, s Style) string {
	switch {
	case math.IsInf(v, 0):
		return ErrorOverflow
	case math.IsNaN(v):
		return ErrorInvalid
	}
	switch s {
	case Regular:
		a := math.Abs(v)
		if a >= 1e15 || (a < 1e-15 && v != 0) {
			return expfmt(v, 12)
		}
		return trimmed(v)
	case Fixed:
		return strconv.FormatFloat(v, 'f', 6, 64)
	case Scientific:
		return expfmt(v, 12)
	case Engineering:
		return engfmt(v)
	case GroupedTriads:
		t := trimmed(v)
		if k := strings.IndexByte(t, '.'); k >= 0 {
			return Group(t[:k]) + t[k:]
		}
		return Group(t)
	default:
		panic("calc: invalid style " + s.String())
	}
}

// trimmed formats v with 18 decimal places and removes trailing zeros and
// then a trailing decimal point.
func trimmed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 18, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// expfmt formats v in exponential notation with prec mantissa decimals and
// the exponent written as a plain integer, e.g. 1.5e3 or 2.0e-7.
func expfmt(v float64, prec int) string {
	return plainexp(strconv.FormatFloat(v, 'e', prec, 64))
}

// plainexp rewrites the exponent of s from e+05 form to e5 form.
func plainexp(s string) string {
	k := strings.LastIndexAny(s, "eE")
	if k < 0 {
		return s
	}
	exp, err := strconv.Atoi(s[k+1:])
	if err != nil {
		panic("calc: bad exponent in " + strconv.Quote(s))
	}
	return s[:k] + "e" + strconv.Itoa(exp)
}

// trimfrac removes trailing zeros and then a trailing decimal point from a
// decimal with a fractional part.
func trimfrac(s string) string {
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

const engZero = "0.000000000000e0"

func engfmt(v float64) string {
	if v == 0 {
		return engZero
	}
	a := math.Abs(v)
	exp := int(math.Floor(math.Log10(a)))
	// Log10 is inexact near powers of ten and can be off by several for
	// subnormals. Pow10 is 0 below -323, so the first loop ends.
	for a < math.Pow10(exp) {
		exp--
	}
	for a >= math.Pow10(exp+1) {
		exp++
	}
	e := floor3(exp)
	m := strconv.FormatFloat(unscale(a, e), 'f', 9, 64)
	if strings.HasPrefix(m, "1000") {
		// Rounding carried into a fourth integer digit.
		e += 3
		m = strconv.FormatFloat(unscale(a, e), 'f', 9, 64)
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + trimfrac(m) + "e" + strconv.Itoa(e)
}

// floor3 rounds k down to a multiple of 3.
func floor3(k int) int {
	q := k / 3
	if k%3 != 0 && k < 0 {
		q--
	}
	return q * 3
}

// unscale computes a / 10^e without overflowing the power for exponents near
// the ends of the float64 range.
func unscale(a float64, e int) float64 {
	if -300 <= e && e <= 300 {
		return a / math.Pow10(e)
	}
	h := e / 2
	return a / math.Pow10(h) / math.Pow10(e-h)
}

// Group inserts a comma before every third digit of s counting from the
// right. s must be a decimal integer, optionally negative.
func Group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		b.Grow(len(s) + len(s)/3)
		for i := 0; i < len(s); i++ {
			if i > 0 && (len(s)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteByte(s[i])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// StripGroups removes the separators inserted by Group, so that a displayed
// GroupedTriads value can be parsed again.
func StripGroups(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// bigPrec is the precision in bits for rendering exact integers in
// exponential notation.
const bigPrec = 256

// FormatBig renders an exact integer in the given style. Regular shows all
// digits, Fixed appends six zero decimals, GroupedTriads groups the digits,
// and Scientific and Engineering round the mantissa as Format does.
func FormatBig(x *big.Int, s Style) string {
	switch s {
	case Regular:
		return x.String()
	case Fixed:
		return x.String() + ".000000"
	case Scientific:
		f := new(big.Float).SetPrec(bigPrec).SetInt(x)
		return plainexp(f.Text('e', 12))
	case Engineering:
		return engbig(x)
	case GroupedTriads:
		return Group(x.String())
	default:
		panic("calc: invalid style " + s.String())
	}
}

func engbig(x *big.Int) string {
	if x.Sign() == 0 {
		return engZero
	}
	a := new(big.Int).Abs(x)
	e := floor3(len(a.String()) - 1)
	m := bigunscale(a, e)
	if strings.HasPrefix(m, "1000") {
		e += 3
		m = bigunscale(a, e)
	}
	sign := ""
	if x.Sign() < 0 {
		sign = "-"
	}
	return sign + trimfrac(m) + "e" + strconv.Itoa(e)
}

// bigunscale formats a / 10^e with nine decimal places.
func bigunscale(a *big.Int, e int) string {
	ten := new(big.Float).SetPrec(bigPrec).SetInt64(10)
	k := new(big.Float).SetPrec(bigPrec).SetInt64(int64(e))
	p := bigfloat.Pow(new(big.Float).SetPrec(bigPrec), ten, k)
	m := new(big.Float).SetPrec(bigPrec).SetInt(a)
	m.Quo(m, p)
	return m.Text('f', 9)
}
