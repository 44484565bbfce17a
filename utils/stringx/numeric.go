// File: numeric.go
// Title: Numeric Format Validation
// Description: Validators recognising signed decimal integers and decimal
//              or hexadecimal floating point notation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

// IsInt reports whether v is an optional '-' followed by one or more ASCII
// digits. Hexadecimal and exponent notation are not integers.
func (v *Value) IsInt() bool {
	s := v.View()
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// IsFloat reports whether v is a floating point number in decimal or
// hexadecimal notation:
//
//	[-] [0x|0X] mantissa [marker [-] exponent]
//
// The 0x prefix switches digits to hexadecimal and the exponent marker from
// e/E to p/P. Mantissa and exponent each need at least one digit and may
// hold at most one '.'.
func (v *Value) IsFloat() bool {
	s := v.View()
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}

	digit, marker := isDigit, byte('e')
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		digit, marker = isHexDigit, 'p'
	}

	mantissa, exponent, hasExponent := cutExponent(s, marker)
	if !isDigitRun(mantissa, digit) {
		return false
	}
	if !hasExponent {
		return true
	}
	if len(exponent) > 0 && exponent[0] == '-' {
		exponent = exponent[1:]
	}
	return isDigitRun(exponent, digit)
}

// IsNumeric reports whether v is an integer or a floating point number
func (v *Value) IsNumeric() bool {
	return v.IsInt() || v.IsFloat()
}

// cutExponent splits s at the first exponent marker in either case
func cutExponent(s []byte, marker byte) (mantissa, exponent []byte, found bool) {
	upper := marker - 'a' + 'A'
	for i, c := range s {
		if c == marker || c == upper {
			return s[:i], s[i+1:], true
		}
	}
	return s, nil, false
}

// isDigitRun reports whether s holds at least one digit, at most one '.'
// and nothing else
func isDigitRun(s []byte, digit func(byte) bool) bool {
	digits, points := 0, 0
	for _, c := range s {
		switch {
		case c == '.':
			points++
			if points > 1 {
				return false
			}
		case digit(c):
			digits++
		default:
			return false
		}
	}
	return digits > 0
}
