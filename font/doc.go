// Package font provides the two fixed glyph tables used by the ssd1306lite driver.
//
// Glyphs are stored in the SSD1306 page encoding: one byte per display
// column, bit 0 on the top pixel row, bit 7 on the bottom.
//
// Two fonts are available:
//
//   - Normal: 6 columns x 8 rows, one display page tall. 5 data columns
//     plus one blank spacing column per glyph.
//   - Double: 8 columns x 16 rows, two display pages tall. Each glyph is
//     stored as two 8-byte halves, the top half first.
//
// Both fonts start at the space character (0x20) but end at different
// characters: Normal covers ' '..'{' and Double covers ' '..'}'.
// A character outside a font's range maps to glyph 0 (space).
//
// Example usage:
//
//	// The 6 column bytes for 'A' in the normal font.
//	cols := font.Normal('A')
//
//	// The two 8-byte halves of 'A' in the double-height font.
//	top, bottom := font.Double('A')
//
// The tables are built once and never mutated.
package font
