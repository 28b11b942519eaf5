package font

// double holds the 8x16 font, 16 bytes per glyph: the top 8-byte half
// followed by the bottom 8-byte half. It is derived once from the 6x8
// column data by stretching each glyph to twice its height, with one
// blank column on either side to reach 8 columns. Built at package init
// and never written again.
var double = buildDouble()

func buildDouble() []byte {
	n := int(DoubleLast-First) + 1
	out := make([]byte, n*DoubleHeight)
	for g := 0; g < n; g++ {
		src := columns[g*NormalWidth : g*NormalWidth+NormalWidth]
		dst := out[g*DoubleHeight : g*DoubleHeight+DoubleHeight]
		for col := 0; col < NormalWidth; col++ {
			top, bottom := stretch(src[col])
			dst[1+col] = top
			dst[DoubleWidth+1+col] = bottom
		}
	}
	return out
}

// stretch doubles each of the 8 pixel bits in a column byte, producing
// the top and bottom halves of a 16-pixel column. Bit 0 stays on top.
func stretch(b byte) (top, bottom byte) {
	for bit := 0; bit < 4; bit++ {
		if b&(1<<bit) != 0 {
			top |= 0x03 << (2 * bit)
		}
		if b&(1<<(4+bit)) != 0 {
			bottom |= 0x03 << (2 * bit)
		}
	}
	return top, bottom
}
