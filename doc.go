// Package ssd1306lite controls SSD1306-based 128x64 monochrome OLED displays
// without a host-side frame buffer.
//
// The driver is write-only and page-oriented: text, fills and raw
// images are rendered straight into the controller's display memory.
// No pixel state is mirrored on the host, so the driver needs no
// buffer space and carries almost no state of its own.
//
// # Display Memory Model
//
// The SSD1306 organizes its 128x64 pixels as 8 horizontal pages of 128
// column bytes. One byte covers 8 vertically stacked pixels with bit 0
// on the top line of the page. Drawing positions are therefore a
// (page, column) pair: the page is the height of an entire character
// while the column is a single pixel. To place a 6x8 character at the
// 5th character cell of page 2, use position (2, 5*6), not (2, 5).
//
// Anything that would land outside the 8x128 grid is clipped or
// dropped silently. The bus has no acknowledgement channel, so the
// driver has nothing to report errors against; I/O errors surface only
// from the underlying pins or bus.
//
// # Hardware Connection
//
// Connect the display's clock and data lines to any two GPIO outputs:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on module)
//	SCL         → any GPIO output
//	SDA         → any GPIO output
//
// The two-wire protocol is bit-banged I2C that never samples the
// acknowledge slot, so the pins do not need to be on an I2C-capable
// header. Alternatively, connect the display to a real I2C bus and use
// NewI2C.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ssd1306lite"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		scl := gpioreg.ByName("GPIO3")
//		sda := gpioreg.ByName("GPIO2")
//
//		dev, err := ssd1306lite.New(scl, sda, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		dev.Clear()
//		dev.Text2x(0, 0, "12.345 MHz")
//		dev.Text(3, 0, "gate: 1s   ppm: +2")
//	}
//
// # Text
//
// Two fixed fonts are compiled in: a 6x8 font (21 characters per row,
// drawn with Text) and a double-height 8x16 font (16 characters per
// row, drawn with Text2x across two pages). Both can be mixed freely,
// and double-height text can start on any page from 0 to 6. Text never
// wraps; whatever does not fit on the row is truncated.
//
// # Fills and Images
//
// FillScreen, FillArea and FillAreaPattern write byte values directly
// into display memory. A pattern like {0xFF, 0x00, 0x00, 0x00} draws
// vertical lines every 4 columns; a walking bit draws diagonals.
// DrawImage blits a pre-encoded image (same byte layout as display
// memory) with clipping at the display edges.
//
// # Inversion
//
// There are two independent inversions. InvertData complements every
// data byte before it is written, affecting subsequent drawing only.
// InvertScreen flips the hardware pixel polarity for the whole panel
// without touching display memory. Both can be active at once.
//
// # Concurrency
//
// The driver does no locking. A frame is an uninterruptible sequence
// of timed pin transitions, so all calls on one device must come from
// a single goroutine, and nothing else may drive the two bus lines.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306lite
