package ssd1306lite

import (
	"fmt"

	"github.com/flavioheleno/ssd1306lite/font"
)

// Drawing operations render directly into controller memory, one data
// frame per affected page. Anything that would land outside the 8x128
// page/column grid is clipped or dropped silently; the bus has no
// return channel, so geometry problems are never reported as errors.

// Clear blanks the whole display.
func (d *Dev) Clear() error {
	return d.FillScreen(0x00)
}

// FillScreen fills the entire display with one byte value. The byte
// spans 8 pixel rows with bit 0 on the top row of each page, so
// FillScreen(0x01) draws a horizontal line on every 8th display line.
func (d *Dev) FillScreen(fill byte) error {
	return d.FillArea(0, 0, NumPages, NumColumns, fill)
}

// FillArea fills a region of pages x columns with one byte value. The
// pages and columns arguments are the size of the region, not its end
// coordinates. The region is clipped to the display.
func (d *Dev) FillArea(startPage, startColumn, pages, columns int, fill byte) error {
	if startPage < 0 || startColumn < 0 {
		return nil
	}
	for page := startPage; page < startPage+pages && page < NumPages; page++ {
		if err := d.SetPosition(page, startColumn); err != nil {
			return err
		}
		if err := d.beginData(); err != nil {
			return err
		}
		for col := startColumn; col < startColumn+columns && col < NumColumns; col++ {
			if err := d.putData(fill); err != nil {
				return err
			}
		}
		if err := d.endFrame(); err != nil {
			return err
		}
	}
	return nil
}

// FillAreaPattern fills a region like FillArea, but cycles through the
// pattern bytes instead of repeating a single value. The pattern
// restarts from its first byte at the start of every page row, so a
// pattern like {0xFF, 0x00, 0x00, 0x00} draws aligned vertical lines
// regardless of how rows are clipped. An empty pattern is a no-op.
func (d *Dev) FillAreaPattern(startPage, startColumn, pages, columns int, pattern []byte) error {
	if startPage < 0 || startColumn < 0 || len(pattern) == 0 {
		return nil
	}
	for page := startPage; page < startPage+pages && page < NumPages; page++ {
		if err := d.SetPosition(page, startColumn); err != nil {
			return err
		}
		if err := d.beginData(); err != nil {
			return err
		}
		ix := 0
		for col := startColumn; col < startColumn+columns && col < NumColumns; col++ {
			if err := d.putData(pattern[ix]); err != nil {
				return err
			}
			ix++
			if ix == len(pattern) {
				ix = 0
			}
		}
		if err := d.endFrame(); err != nil {
			return err
		}
	}
	return nil
}

// DrawImage copies a rows x columns image to the display. The image
// uses the same encoding as display memory: one byte per column, 8
// vertically stacked pixels, bit 0 on top, rows of columns bytes in
// order. The image is clipped to the display edges; the source index
// is recomputed at the start of every row so clipped columns do not
// shift later rows.
//
// Image bytes are written verbatim, subject only to the data-inversion
// flag. A buffer shorter than rows*columns is an error.
func (d *Dev) DrawImage(startPage, startColumn, rows, columns int, image []byte) error {
	if startPage < 0 || startColumn < 0 || rows <= 0 || columns <= 0 {
		return nil
	}
	if len(image) < rows*columns {
		return fmt.Errorf("ssd1306lite: image buffer too short; expected %d bytes, got %d", rows*columns, len(image))
	}
	for page := startPage; page < startPage+rows && page < NumPages; page++ {
		ix := (page - startPage) * columns
		if err := d.SetPosition(page, startColumn); err != nil {
			return err
		}
		if err := d.beginData(); err != nil {
			return err
		}
		for col := startColumn; col < startColumn+columns && col < NumColumns; col++ {
			if err := d.putData(image[ix]); err != nil {
				return err
			}
			ix++
		}
		if err := d.endFrame(); err != nil {
			return err
		}
	}
	return nil
}

// Text draws a string at the given page and column using the 6x8 font.
// Up to 21 characters fit on a row. Only whole glyphs are drawn: text
// that would extend past column 127 is truncated, never wrapped.
// Characters outside the font's printable range draw as spaces. A page
// outside the display is a silent no-op.
func (d *Dev) Text(page, column int, s string) error {
	if page < 0 || page >= NumPages || column < 0 {
		return nil
	}
	if err := d.SetPosition(page, column); err != nil {
		return err
	}
	if err := d.beginData(); err != nil {
		return err
	}
	col := column
	for i := 0; i < len(s) && col <= NumColumns-font.NormalWidth; i++ {
		for _, b := range font.Normal(s[i]) {
			if err := d.putData(b); err != nil {
				return err
			}
		}
		col += font.NormalWidth
	}
	return d.endFrame()
}

// Text2x draws a string at the given page and column using the
// double-height 8x16 font. The glyphs span two pages: page holds the
// top halves and page+1 the bottom halves, so the last valid page is 6.
// Up to 16 characters fit on a row. Text2x and Text can be mixed, and
// double-height rows do not need to start on an even page.
//
// Both halves truncate at the same character, keeping the two bands of
// every glyph aligned.
func (d *Dev) Text2x(page, column int, s string) error {
	if page < 0 || page > NumPages-2 || column < 0 {
		return nil
	}
	for half := 0; half < 2; half++ {
		if err := d.SetPosition(page+half, column); err != nil {
			return err
		}
		if err := d.beginData(); err != nil {
			return err
		}
		col := column
		for i := 0; i < len(s) && col <= NumColumns-font.DoubleWidth; i++ {
			top, bottom := font.Double(s[i])
			g := top
			if half == 1 {
				g = bottom
			}
			for _, b := range g {
				if err := d.putData(b); err != nil {
					return err
				}
			}
			col += font.DoubleWidth
		}
		if err := d.endFrame(); err != nil {
			return err
		}
	}
	return nil
}
