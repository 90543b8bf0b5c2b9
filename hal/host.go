//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"cydpanel/panel/touch"
)

// HostConfig selects the host-side devices.
type HostConfig struct {
	// Serial is "stdio" (default), "none", or a device/pty path.
	Serial string
	Baud   int

	// TouchSPI, when set, reads a real XPT2046 through Linux spidev
	// (for example "/dev/spidev0.1") instead of emulating one.
	TouchSPI string
	// TouchIRQ names the pen-interrupt GPIO for TouchSPI ("GPIO17").
	// Empty means the pressure check alone decides.
	TouchIRQ string

	// LogWriter receives log lines; nil means stderr.
	LogWriter io.Writer
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	emu    *touchEmulator
	touch  Touch
	serial *hostSerial
	clock  *hostClock
}

// New returns a host HAL implementation.
func New(cfg HostConfig) (HAL, error) {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) (*hostHAL, error) {
	w := cfg.LogWriter
	if w == nil {
		w = os.Stderr
	}
	ser, err := openHostSerial(cfg.Serial, cfg.Baud)
	if err != nil {
		return nil, err
	}

	h := &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(ScreenWidth, ScreenHeight),
		emu:    newTouchEmulator(touch.DefaultCalibration(ScreenWidth, ScreenHeight)),
		serial: ser,
		clock:  newHostClock(),
	}
	h.touch = h.emu
	if cfg.TouchSPI != "" {
		pt, err := openPeriphTouch(cfg.TouchSPI, cfg.TouchIRQ)
		if err != nil {
			_ = ser.Close()
			return nil, err
		}
		h.touch = pt
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Touch() Touch     { return h.touch }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) Clock() Clock     { return h.clock }

func (h *hostHAL) close() error {
	return h.serial.Close()
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
