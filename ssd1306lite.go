// Package ssd1306lite controls a SSD1306 OLED display without a frame buffer.
//
// The SSD1306 is a 1-bit 128x64 OLED controller. This driver renders
// text, fills and raw images directly into controller memory over a
// bit-banged two-wire serial bus or a hardware I2C bus.
//
// See the examples for how to use this package.
package ssd1306lite

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// Display geometry. The controller memory is organized as 8 horizontal
// pages of 128 column bytes; each byte covers 8 vertically stacked
// pixels with bit 0 on top.
const (
	Width      = 128 // display width in pixels
	Height     = 64  // display height in pixels
	NumPages   = 8   // horizontal bands of 8 pixel rows
	NumColumns = 128 // column bytes per page
)

// SSD1306 command set. Commands marked with an argument count are
// followed by that many literal argument bytes.
const (
	cmdSetColumnLo   = 0x00 // 0x00..0x0F set low nibble of column start
	cmdSetColumnHi   = 0x10 // 0x10..0x1F set high nibble of column start
	cmdAddressMode   = 0x20 // 1 arg: 0=horizontal, 1=vertical, 2=page
	cmdSetStartLine  = 0x40 // 0x40..0x7F set start line 0..63
	cmdSetContrast   = 0x81 // 1 arg: contrast level 0..255
	cmdChargePump    = 0x8D // 1 arg: 0x10=disable, 0x14=enable
	cmdSegmentNormal = 0xA0 // column 0 to SEG0
	cmdSegmentRemap  = 0xA1 // column 127 to SEG0
	cmdRAMEnable     = 0xA4 // display follows RAM content
	cmdRAMDisable    = 0xA5 // all pixels on regardless of RAM
	cmdInvertOff     = 0xA6 // RAM bit set lights the pixel
	cmdInvertOn      = 0xA7 // RAM bit set darkens the pixel
	cmdMultiplex     = 0xA8 // 1 arg: multiplex ratio 0..63
	cmdDisplayOff    = 0xAE
	cmdDisplayOn     = 0xAF
	cmdSetPage       = 0xB0 // 0xB0..0xB7 set page start address
	cmdScanNormal    = 0xC0 // COM scan row 0 to row 7
	cmdScanRemap     = 0xC8 // COM scan row 7 to row 0
	cmdDisplayOffset = 0xD3 // 1 arg: vertical offset 0..63
	cmdClockDivide   = 0xD5 // 1 arg: clock divide ratio and frequency
	cmdPrecharge     = 0xD9 // 1 arg: pre-charge period
	cmdCOMPins       = 0xDA // 1 arg: COM pins hardware configuration
	cmdVCOMHLevel    = 0xDB // 1 arg: VCOMH deselect level
)

// DefaultAddr is the most common 7-bit address of SSD1306 modules. Some
// boards are strapped to 0x3D instead.
const DefaultAddr = 0x3C

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Addr is the 7-bit device address (default: 0x3C).
	Addr uint16

	// Rotated selects 180 degree rotation by using the non-remapped
	// segment and COM scan directions.
	Rotated bool

	// Sequential selects the sequential COM pin configuration. Try this
	// if only every other page shows on your module.
	Sequential bool
}

// Dev is the device handle for the SSD1306 display.
//
// The driver is write-only and keeps no copy of display memory; the
// only state carried across calls is the data-inversion flag. Methods
// are not safe for concurrent use: a frame is a timed sequence of pin
// transitions that must not be pre-empted by another caller.
type Dev struct {
	t transport

	// invert complements every display-memory byte before it is
	// transmitted. Command bytes are never affected.
	invert bool
}

// New creates a Dev that bit-bangs the two-wire serial protocol over
// the given clock and data lines, then initializes the display.
//
// Both pins are driven as outputs and left idle-high. The bus carries
// no acknowledgement: the driver cannot detect whether a display is
// present or whether it received the data.
//
// opts can be nil to use defaults.
func New(scl, sda gpio.PinOut, opts *Opts) (*Dev, error) {
	if scl == nil || sda == nil {
		return nil, errors.New("ssd1306lite: both clock and data pins are required")
	}
	opts = withDefaults(opts)
	w := &twoWire{scl: scl, sda: sda, addr: byte(opts.Addr) << 1}
	if err := w.idle(); err != nil {
		return nil, fmt.Errorf("ssd1306lite: failed to idle bus lines: %w", err)
	}
	d := &Dev{t: w}
	if err := d.command(initCmds(opts)...); err != nil {
		return nil, err
	}
	return d, nil
}

// NewI2C creates a Dev that communicates over a hardware I2C bus, then
// initializes the display.
//
// opts can be nil to use defaults.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ssd1306lite: an I2C bus is required")
	}
	opts = withDefaults(opts)
	d := &Dev{t: &busConn{c: &i2c.Dev{Bus: b, Addr: opts.Addr}}}
	if err := d.command(initCmds(opts)...); err != nil {
		return nil, err
	}
	return d, nil
}

func withDefaults(opts *Opts) *Opts {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Addr == 0 {
		o := *opts
		o.Addr = DefaultAddr
		return &o
	}
	return opts
}

// initCmds returns the power-up command sequence, ending with the
// display-on command.
func initCmds(opts *Opts) []byte {
	segment, scan := byte(cmdSegmentRemap), byte(cmdScanRemap)
	if opts.Rotated {
		segment, scan = cmdSegmentNormal, cmdScanNormal
	}
	comPins := byte(0x12)
	if opts.Sequential {
		comPins = 0x02
	}
	return []byte{
		cmdDisplayOff,
		cmdMultiplex, Height - 1,
		cmdDisplayOffset, 0,
		cmdSetStartLine,
		segment,
		scan,
		cmdAddressMode, 2, // page addressing
		cmdSetContrast, 127,
		cmdInvertOff,
		cmdRAMEnable,
		cmdClockDivide, 0xF0,
		cmdPrecharge, 0x22,
		cmdCOMPins, comPins,
		cmdVCOMHLevel, 0x20,
		cmdChargePump, 0x14,
		cmdDisplayOn,
	}
}

// command sends one or more command bytes in a single command frame.
func (d *Dev) command(cmds ...byte) error {
	if err := d.t.begin(ctlCommand); err != nil {
		return err
	}
	for _, c := range cmds {
		if err := d.t.put(c); err != nil {
			return err
		}
	}
	return d.t.end()
}

// beginData opens a display-memory data frame.
func (d *Dev) beginData() error {
	return d.t.begin(ctlData)
}

// putData transmits one display-memory byte, complemented first if the
// data-inversion flag is set. Only valid inside a data frame.
func (d *Dev) putData(b byte) error {
	if d.invert {
		b = ^b
	}
	return d.t.put(b)
}

// endFrame closes the open frame.
func (d *Dev) endFrame() error {
	return d.t.end()
}

// SetPosition moves the controller's write cursor to the given page and
// column. Out-of-range coordinates make it a silent no-op.
//
// The controller does not advance past the end of a page: after 128
// column writes the cursor wraps within the same page, so every row of
// a multi-row operation must set its position explicitly.
func (d *Dev) SetPosition(page, column int) error {
	if page < 0 || page >= NumPages || column < 0 || column >= NumColumns {
		return nil
	}
	return d.command(
		cmdSetPage|byte(page),
		cmdSetColumnHi|byte(column>>4),
		cmdSetColumnLo|byte(column&0x0F),
	)
}

// InvertData controls host-side data inversion: when enabled, every
// subsequent display-memory byte is bitwise complemented before it is
// written. Already-written memory and command bytes are unaffected.
// This is independent of InvertScreen.
func (d *Dev) InvertData(inverted bool) {
	d.invert = inverted
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	return d.command(cmdSetContrast, level)
}

// InvertScreen sets the hardware pixel polarity: when inverted, pixels
// light where the RAM bit is clear. Display memory is not modified.
// This is independent of InvertData.
func (d *Dev) InvertScreen(inverted bool) error {
	if inverted {
		return d.command(cmdInvertOn)
	}
	return d.command(cmdInvertOff)
}

// Sleep blanks the display and puts it in low-power mode, or wakes it
// again. Display memory is retained while sleeping.
func (d *Dev) Sleep(sleeping bool) error {
	if sleeping {
		return d.command(cmdDisplayOff)
	}
	return d.command(cmdDisplayOn)
}

// Halt turns the display off. It implements conn.Resource; use
// Sleep(false) to turn the display back on.
func (d *Dev) Halt() error {
	return d.Sleep(true)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306lite.Dev{%dx%d}", Width, Height)
}

var _ conn.Resource = &Dev{}
