// Package font provides the decoded-digit character sets of the AS1115 LED
// display controller.
//
// When a digit is in decode mode the AS1115 does not take a segment pattern.
// It takes a 4-bit code and looks the segments up in one of two built-in
// fonts, selected by bit 2 of the feature register:
//
//	Code  Code-B  Hex
//	0x0-9 0-9     0-9
//	0xA   -       A
//	0xB   E       b
//	0xC   H       C
//	0xD   L       d
//	0xE   P       E
//	0xF   blank   F
//
// Bit 7 of the digit register is the decimal point in both fonts.
//
// This package provides:
//
// - Font: the font selector, CodeB or Hex
// - Font.Encode: translates a printable character to the code of that font
//
// Example usage:
//
//	code := font.Hex.Encode('c') // 0x0C
//	code = font.CodeB.Encode('-') // 0x0A
//	code = font.CodeB.Encode(0x7E) // 0x7E, unmapped values pass through
package font
