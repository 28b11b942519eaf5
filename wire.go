package ssd1306lite

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Control bytes. One follows the address byte at the start of every
// frame and selects how the controller interprets the payload.
const (
	ctlCommand = 0x00 // command bytes follow
	ctlData    = 0x40 // display RAM bytes follow
)

// transport frames byte streams to the controller as command or
// display-data transactions. Frames are strictly sequential: begin,
// zero or more put calls, end. Never interleaved.
type transport interface {
	begin(control byte) error
	put(b byte) error
	end() error
}

// twoWire bit-bangs the controller's two-wire serial protocol over two
// GPIO output lines. It is write-only: the acknowledge slot after each
// byte is clocked but never sampled, so transmission failures are
// undetectable. Errors come only from the pins themselves.
//
// The protocol needs an uninterrupted sequence of pin transitions per
// byte. Nothing else may drive the same two lines, and no interrupt or
// goroutine may call into the driver while a frame is open.
type twoWire struct {
	scl  gpio.PinOut
	sda  gpio.PinOut
	addr byte // 7-bit device address shifted left, write bit clear
}

// idle drives both lines to the idle-high state.
func (w *twoWire) idle() error {
	if err := w.scl.Out(gpio.High); err != nil {
		return err
	}
	return w.sda.Out(gpio.High)
}

// start asserts a start condition: data pulled low while the clock is
// high, then the clock pulled low. The leading writes restore the
// idle-high state and have no effect on an idle bus.
func (w *twoWire) start() error {
	if err := w.idle(); err != nil {
		return err
	}
	if err := w.sda.Out(gpio.Low); err != nil {
		return err
	}
	return w.scl.Out(gpio.Low)
}

// stop asserts a stop condition: data raised while the clock is high,
// leaving both lines idle-high.
func (w *twoWire) stop() error {
	if err := w.scl.Out(gpio.Low); err != nil {
		return err
	}
	if err := w.sda.Out(gpio.Low); err != nil {
		return err
	}
	if err := w.scl.Out(gpio.High); err != nil {
		return err
	}
	return w.sda.Out(gpio.High)
}

// sendByte clocks out one byte, most significant bit first. The data
// line is set while the clock is low; the bit is latched by a clock
// pulse. After 8 bits the data line is released high and the clock is
// pulsed once more for the acknowledge slot, which is not sampled.
func (w *twoWire) sendByte(b byte) error {
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		bit := gpio.Low
		if b&mask != 0 {
			bit = gpio.High
		}
		if err := w.sda.Out(bit); err != nil {
			return err
		}
		if err := w.clock(); err != nil {
			return err
		}
	}
	if err := w.sda.Out(gpio.High); err != nil {
		return err
	}
	return w.clock()
}

// clock pulses the clock line high then low.
func (w *twoWire) clock() error {
	if err := w.scl.Out(gpio.High); err != nil {
		return err
	}
	return w.scl.Out(gpio.Low)
}

func (w *twoWire) begin(control byte) error {
	if err := w.start(); err != nil {
		return err
	}
	if err := w.sendByte(w.addr); err != nil {
		return err
	}
	return w.sendByte(control)
}

func (w *twoWire) put(b byte) error {
	return w.sendByte(b)
}

func (w *twoWire) end() error {
	return w.stop()
}

// busConn frames transactions over a hardware bus connection, normally
// an i2c.Dev bound to a kernel I2C bus. The control byte and payload
// are accumulated into one reused buffer and sent as a single
// transaction when the frame closes.
type busConn struct {
	c   conn.Conn
	buf []byte
}

func (t *busConn) begin(control byte) error {
	t.buf = append(t.buf[:0], control)
	return nil
}

func (t *busConn) put(b byte) error {
	t.buf = append(t.buf, b)
	return nil
}

func (t *busConn) end() error {
	return t.c.Tx(t.buf, nil)
}
