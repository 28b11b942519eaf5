package font

// Font geometry and printable ranges. The two fonts deliberately end at
// different characters; keep the boundaries separate.
const (
	First = ' ' // first printable character in both fonts

	NormalWidth  = 6   // columns per normal glyph
	NormalHeight = 8   // pixel rows per normal glyph
	NormalLast   = '{' // last printable character in the normal font

	DoubleWidth  = 8   // columns per double-height glyph
	DoubleHeight = 16  // pixel rows per double-height glyph
	DoubleLast   = '}' // last printable character in the double-height font
)

// Normal returns the NormalWidth column bytes for c in the 6x8 font.
// Characters outside First..NormalLast return glyph 0 (space).
func Normal(c byte) []byte {
	if c < First || c > NormalLast {
		c = First
	}
	i := int(c-First) * NormalWidth
	return columns[i : i+NormalWidth]
}

// Double returns the top and bottom 8-byte halves for c in the 8x16
// font. Characters outside First..DoubleLast return glyph 0 (space).
func Double(c byte) (top, bottom []byte) {
	if c < First || c > DoubleLast {
		c = First
	}
	i := int(c-First) * DoubleHeight
	return double[i : i+DoubleWidth], double[i+DoubleWidth : i+DoubleHeight]
}
