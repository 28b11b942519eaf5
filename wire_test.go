package ssd1306lite

import (
	"errors"
	"reflect"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// The two-wire transmitter is tested against a recorded transition log
// instead of real hardware: every pin write is captured in order, and a
// decoder reconstructs start/stop framing and the transmitted bytes.

type wireEvent struct {
	line  rune // 'C' for clock, 'D' for data
	level gpio.Level
}

type wireLog struct {
	events []wireEvent
}

// recordPin is a gpio.PinOut that appends every write to a log shared
// with the other bus line.
type recordPin struct {
	log   *wireLog
	line  rune
	name  string
	level gpio.Level
}

func (p *recordPin) Out(l gpio.Level) error {
	p.level = l
	p.log.events = append(p.log.events, wireEvent{p.line, l})
	return nil
}

func (p *recordPin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("recordpin: PWM is not supported")
}

func (p *recordPin) String() string   { return p.name }
func (p *recordPin) Name() string     { return p.name }
func (p *recordPin) Number() int      { return -1 }
func (p *recordPin) Function() string { return "Out" }
func (p *recordPin) Halt() error      { return nil }

// newTestWire returns a shared log and a clock and data pin, both
// already at the idle-high level.
func newTestWire() (*wireLog, *recordPin, *recordPin) {
	l := &wireLog{}
	scl := &recordPin{log: l, line: 'C', name: "SCL", level: gpio.High}
	sda := &recordPin{log: l, line: 'D', name: "SDA", level: gpio.High}
	return l, scl, sda
}

// newTestDev returns a Dev wired to recording pins, without running the
// initialization sequence.
func newTestDev() (*Dev, *wireLog) {
	l, scl, sda := newTestWire()
	d := &Dev{t: &twoWire{scl: scl, sda: sda, addr: DefaultAddr << 1}}
	return d, l
}

type busFrame struct {
	addr    byte
	control byte
	data    []byte
}

// decodeFrames replays a transition log and reconstructs the bus
// frames. A start condition is the data line falling while the clock
// is high; a stop condition is the data line rising while the clock is
// high. Bits are sampled on each rising clock edge, most significant
// first, with every 9th clock being the unsampled acknowledge slot.
func decodeFrames(t *testing.T, events []wireEvent) []busFrame {
	t.Helper()

	scl, sda := gpio.High, gpio.High
	inFrame := false
	var cur byte
	nbits := 0
	var raw []byte
	var frames []busFrame

	for i, e := range events {
		switch e.line {
		case 'C':
			if e.level == scl {
				continue
			}
			scl = e.level
			if scl == gpio.High && inFrame {
				nbits++
				if nbits <= 8 {
					cur <<= 1
					if sda == gpio.High {
						cur |= 1
					}
				}
				if nbits == 9 {
					raw = append(raw, cur)
					cur, nbits = 0, 0
				}
			}
		case 'D':
			if e.level == sda {
				continue
			}
			sda = e.level
			if scl != gpio.High {
				continue
			}
			if sda == gpio.Low {
				if inFrame {
					t.Fatalf("event %d: start condition inside an open frame", i)
				}
				inFrame = true
				raw = nil
				cur, nbits = 0, 0
			} else {
				if !inFrame {
					t.Fatalf("event %d: stop condition without an open frame", i)
				}
				// The stop sequence raises the clock once with the data
				// line low, which looks like a single pending bit.
				if nbits != 1 {
					t.Fatalf("event %d: stop condition mid-byte (%d bits pending)", i, nbits)
				}
				if len(raw) < 2 {
					t.Fatalf("event %d: frame with %d bytes, want at least address and control", i, len(raw))
				}
				frames = append(frames, busFrame{addr: raw[0], control: raw[1], data: raw[2:]})
				inFrame = false
			}
		default:
			t.Fatalf("event %d: unknown line %q", i, e.line)
		}
	}
	if inFrame {
		t.Fatal("transition log ends inside an open frame")
	}
	return frames
}

// dataBytes returns the concatenated payloads of all data frames.
func dataBytes(frames []busFrame) []byte {
	var out []byte
	for _, f := range frames {
		if f.control == ctlData {
			out = append(out, f.data...)
		}
	}
	return out
}

func TestTwoWireStart(t *testing.T) {
	l, scl, sda := newTestWire()
	w := &twoWire{scl: scl, sda: sda}

	if err := w.start(); err != nil {
		t.Fatal(err)
	}
	want := []wireEvent{
		{'C', gpio.High}, // restore idle, no effect on an idle bus
		{'D', gpio.High},
		{'D', gpio.Low}, // data falls while clock high: start
		{'C', gpio.Low},
	}
	if !reflect.DeepEqual(l.events, want) {
		t.Errorf("start transitions = %v, want %v", l.events, want)
	}
}

func TestTwoWireStop(t *testing.T) {
	l, scl, sda := newTestWire()
	w := &twoWire{scl: scl, sda: sda}

	if err := w.stop(); err != nil {
		t.Fatal(err)
	}
	want := []wireEvent{
		{'C', gpio.Low},
		{'D', gpio.Low},
		{'C', gpio.High},
		{'D', gpio.High}, // data rises while clock high: stop
	}
	if !reflect.DeepEqual(l.events, want) {
		t.Errorf("stop transitions = %v, want %v", l.events, want)
	}
}

func TestTwoWireSendByte(t *testing.T) {
	l, scl, sda := newTestWire()
	w := &twoWire{scl: scl, sda: sda}

	if err := w.sendByte(0xA5); err != nil {
		t.Fatal(err)
	}

	var want []wireEvent
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		bit := gpio.Low
		if 0xA5&mask != 0 {
			bit = gpio.High
		}
		want = append(want,
			wireEvent{'D', bit},
			wireEvent{'C', gpio.High},
			wireEvent{'C', gpio.Low},
		)
	}
	// Acknowledge slot: data released high, one more clock pulse.
	want = append(want,
		wireEvent{'D', gpio.High},
		wireEvent{'C', gpio.High},
		wireEvent{'C', gpio.Low},
	)
	if !reflect.DeepEqual(l.events, want) {
		t.Errorf("sendByte transitions = %v, want %v", l.events, want)
	}
}

func TestTwoWireFrameDecodes(t *testing.T) {
	l, scl, sda := newTestWire()
	w := &twoWire{scl: scl, sda: sda, addr: 0x3C << 1}

	if err := w.begin(ctlData); err != nil {
		t.Fatal(err)
	}
	for _, b := range []byte{0x00, 0xFF, 0x5A} {
		if err := w.put(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.end(); err != nil {
		t.Fatal(err)
	}

	frames := decodeFrames(t, l.events)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	f := frames[0]
	if f.addr != 0x78 {
		t.Errorf("address byte = %#02x, want 0x78", f.addr)
	}
	if f.control != ctlData {
		t.Errorf("control byte = %#02x, want %#02x", f.control, ctlData)
	}
	if !reflect.DeepEqual(f.data, []byte{0x00, 0xFF, 0x5A}) {
		t.Errorf("payload = %#v, want {0x00, 0xFF, 0x5A}", f.data)
	}
}
