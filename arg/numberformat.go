package arg

import (
	"strconv"
	"strings"
)

// DoubleFormat selects how ArgDouble renders a floating-point value,
// mirroring QString::arg's 'f'/'e'/'g' format characters.
type DoubleFormat int

const (
	// DFDecimal renders fixed-point notation ("123.456").
	DFDecimal DoubleFormat = iota
	// DFExponent renders scientific notation ("1.23456e+02").
	DFExponent
	// DFSignificantDigits picks whichever of the two is more compact, the
	// way %g does.
	DFSignificantDigits
)

// IntOptions controls ArgInt's rendering.
type IntOptions struct {
	Base       int  // 2..36; 0 means 10
	Capital    bool // render base>10 digits (hex 'a'-'f', etc.) in upper case
	ForceSign  bool // always emit a '+' for non-negative values
	BlankSign  bool // emit a leading space instead of '+' when non-negative and !ForceSign
	ZeroPad    bool // pad with '0' instead of ' ' when fieldWidth is set
	Group      bool // insert a "," every three digits of the integer part (base 10 only)
	FieldWidth int
	FillChar   rune
}

// ArgInt renders value per opts and substitutes it into pattern the way
// Arg does for strings.
func ArgInt(pattern string, value int64, opts IntOptions) string {
	base := opts.Base
	if base == 0 {
		base = 10
	}
	neg := value < 0
	abs := value
	if neg {
		abs = -value
	}
	digits := strconv.FormatInt(abs, base)
	if opts.Capital {
		digits = strings.ToUpper(digits)
	}
	if opts.Group && base == 10 {
		digits = groupDigits(digits)
	}

	var sign string
	switch {
	case neg:
		sign = "-"
	case opts.ForceSign:
		sign = "+"
	case opts.BlankSign:
		sign = " "
	}
	text := sign + digits

	fill := opts.FillChar
	if fill == 0 {
		if opts.ZeroPad {
			fill = '0'
		} else {
			fill = ' '
		}
	}
	if opts.ZeroPad && opts.FieldWidth > 0 && fill == '0' {
		// Zero-padding goes between the sign and the digits, not in front of
		// the sign.
		padded := padToWidth(digits, opts.FieldWidth-len(sign), fill)
		text = sign + padded
	} else if opts.FieldWidth != 0 {
		text = padToWidth(text, opts.FieldWidth, fill)
	}
	return ArgWidth(pattern, text, 0, 0)
}

func groupDigits(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	result := string(out)
	if neg {
		result = "-" + result
	}
	return result
}

// DoubleOptions controls ArgDouble's rendering.
type DoubleOptions struct {
	Format          DoubleFormat
	Capital         bool // render the exponent marker as 'E' instead of 'e'; DFDecimal output has none and is unaffected
	Precision       int  // significant digits for DFSignificantDigits, digits after the point otherwise; -1 selects strconv's default
	ForceSign       bool
	BlankSign       bool // emit a leading space instead of '+' when non-negative and !ForceSign
	ZeroPadExponent bool // pad the exponent's digits to at least two places
	FieldWidth      int
	FillChar        rune
}

// ArgDouble renders value per opts and substitutes it into pattern.
func ArgDouble(pattern string, value float64, opts DoubleOptions) string {
	var fmtByte byte
	switch opts.Format {
	case DFExponent:
		fmtByte = 'e'
	case DFSignificantDigits:
		fmtByte = 'g'
	default:
		fmtByte = 'f'
	}
	if opts.Capital && fmtByte != 'f' {
		fmtByte -= 'a' - 'A'
	}
	text := strconv.FormatFloat(value, fmtByte, opts.Precision, 64)
	switch {
	case opts.ForceSign && value >= 0:
		text = "+" + text
	case opts.BlankSign && value >= 0:
		text = " " + text
	}
	if opts.ZeroPadExponent {
		text = zeroPadExponent(text)
	}
	if opts.FieldWidth != 0 {
		fill := opts.FillChar
		if fill == 0 {
			fill = ' '
		}
		text = padToWidth(text, opts.FieldWidth, fill)
	}
	return ArgWidth(pattern, text, 0, 0)
}

// zeroPadExponent widens a single-digit "e+5"/"e-5" exponent to "e+05".
func zeroPadExponent(s string) string {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s
	}
	mantissa, exp := s[:idx+1], s[idx+1:]
	if len(exp) == 0 {
		return s
	}
	sign := ""
	if exp[0] == '+' || exp[0] == '-' {
		sign, exp = string(exp[0]), exp[1:]
	}
	if len(exp) < 2 {
		exp = strings.Repeat("0", 2-len(exp)) + exp
	}
	return mantissa + sign + exp
}
