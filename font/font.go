// Package font provides the decoded-digit character sets of the AS1115.
package font

import "fmt"

// Font selects the character set used by digits in decode mode.
// The value is the state of the font bit in the feature register.
type Font byte

const (
	CodeB Font = 0x00
	Hex   Font = 0x01
)

// DecimalPoint is OR'd into a digit value to light its decimal point.
const DecimalPoint byte = 0x80

// codeB maps the non-numeric Code-B characters.
var codeB = map[byte]byte{
	'-': 0x0A,
	'E': 0x0B,
	'H': 0x0C,
	'L': 0x0D,
	'P': 0x0E,
	' ': 0x0F,
}

// hex maps the letters of the hexadecimal font, both cases.
var hex = map[byte]byte{
	'a': 0x0A, 'A': 0x0A,
	'b': 0x0B, 'B': 0x0B,
	'c': 0x0C, 'C': 0x0C,
	'd': 0x0D, 'D': 0x0D,
	'e': 0x0E, 'E': 0x0E,
	'f': 0x0F, 'F': 0x0F,
}

// Encode returns the decoded-digit code for c.
//
// Characters the font has no glyph for are returned unchanged, so raw codes
// (0x00-0x0F) and segment patterns for undecoded digits pass straight through.
func (f Font) Encode(c byte) byte {
	table := codeB
	if f == Hex {
		table = hex
	}
	if code, ok := table[c]; ok {
		return code
	}
	return c
}

// has reports whether the font translates c.
func (f Font) has(c byte) bool {
	if f == Hex {
		_, ok := hex[c]
		return ok
	}
	_, ok := codeB[c]
	return ok
}

// String returns the font name.
func (f Font) String() string {
	switch f {
	case CodeB:
		return "CodeB"
	case Hex:
		return "Hex"
	default:
		return fmt.Sprintf("Font(%d)", byte(f))
	}
}
