package rdf

import "unicode"

// Character classes, escapes and numeric lexemes used by the Turtle
// grammar's PN_CHARS_BASE/PN_CHARS productions. Classification is
// rune-based (not byte-based) so the high-plane blocks below classify
// correctly for multi-byte UTF-8 input.

var nameStartCharMinusUnderscoreTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x02FF, Stride: 1},
		{Lo: 0x0370, Hi: 0x037D, Stride: 1},
		{Lo: 0x037F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
}

var nameCharExtraTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 0x00B7, Hi: 0x00B7, Stride: 1},
		{Lo: 0x0300, Hi: 0x036F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
}

// isNameStartCharMinusUnderscore reports whether r is in the nameStartChar
// block set, excluding '_'.
func isNameStartCharMinusUnderscore(r rune) bool {
	return unicode.Is(nameStartCharMinusUnderscoreTable, r)
}

// isNameStartChar reports whether r may start a PN_LOCAL/blank-node-label
// name: '_' or any code point in the nameStartChar blocks.
func isNameStartChar(r rune) bool {
	return r == '_' || isNameStartCharMinusUnderscore(r)
}

// isNameChar reports whether r may continue a PN_LOCAL/blank-node-label
// name: nameStartChar, '-', U+00B7, or a digit/combining-mark block.
func isNameChar(r rune) bool {
	if isNameStartChar(r) || r == '-' {
		return true
	}
	return unicode.Is(nameCharExtraTable, r)
}

// isHexDigit reports whether r is an uppercase hex digit ('0'-'9', 'A'-'F').
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')
}

// isWS reports whether r is insignificant whitespace (not counting
// comments, which are stripped separately by the scanner).
func isWS(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
