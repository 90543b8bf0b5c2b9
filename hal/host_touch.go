//go:build !tinygo

package hal

import (
	"sync"

	"cydpanel/panel/touch"
)

// Pressure readings the emulated controller reports. A press yields
// z = 1200 + 4095 - 3000, comfortably above the touch threshold.
const (
	emuZ1Pressed  = 1200
	emuZ2Pressed  = 3000
	emuZ2Released = touch.ADCMax
)

// touchEmulator behaves like an XPT2046 on a drivers.SPI bus. The window
// feeds it the cursor position; the sampler reads it back through the real
// touch.SPIBus framing and calibration.
type touchEmulator struct {
	mu      sync.Mutex
	cal     touch.Calibration
	pressed bool
	rawX    uint16
	rawY    uint16

	// byte-wise Transfer state
	value uint16
	phase int

	exchanges int
}

func newTouchEmulator(cal touch.Calibration) *touchEmulator {
	return &touchEmulator{cal: cal}
}

// Press moves the pen to p and holds it down.
func (e *touchEmulator) Press(p touch.Point) {
	rx, ry := e.cal.Unmap(p)
	e.mu.Lock()
	e.pressed = true
	e.rawX, e.rawY = rx, ry
	e.mu.Unlock()
}

// Release lifts the pen.
func (e *touchEmulator) Release() {
	e.mu.Lock()
	e.pressed = false
	e.mu.Unlock()
}

func (e *touchEmulator) PenDown() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pressed
}

func (e *touchEmulator) Bus() touch.Bus {
	return touch.NewSPIBus(e, nopPin{})
}

// reading returns the 12-bit conversion result for cmd.
func (e *touchEmulator) reading(cmd byte) uint16 {
	e.exchanges++
	switch cmd {
	case touch.CmdZ1:
		if e.pressed {
			return emuZ1Pressed
		}
		return 0
	case touch.CmdZ2:
		if e.pressed {
			return emuZ2Pressed
		}
		return emuZ2Released
	case touch.CmdX:
		return e.rawX
	case touch.CmdY:
		return e.rawY
	default:
		return 0
	}
}

// Tx implements drivers.SPI for one command/response exchange.
func (e *touchEmulator) Tx(w, r []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(w) == 0 {
		return nil
	}
	v := e.reading(w[0]) << 3
	if len(r) > 1 {
		r[1] = byte(v >> 8)
	}
	if len(r) > 2 {
		r[2] = byte(v)
	}
	return nil
}

// Transfer implements drivers.SPI one byte at a time: a command byte
// followed by the high and low result bytes.
func (e *touchEmulator) Transfer(b byte) (byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.phase {
	case 0:
		e.value = e.reading(b) << 3
		e.phase = 1
		return 0, nil
	case 1:
		e.phase = 2
		return byte(e.value >> 8), nil
	default:
		e.phase = 0
		return byte(e.value), nil
	}
}

type nopPin struct{}

func (nopPin) High() {}
func (nopPin) Low()  {}
