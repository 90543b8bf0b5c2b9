package app

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"time"

	"cydpanel/hal"
	"cydpanel/panel/touch"

	"tinygo.org/x/drivers"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }

func (l *fakeLogger) find(prefix string) string {
	for _, s := range l.lines {
		if strings.HasPrefix(s, prefix) {
			return s
		}
	}
	return ""
}

type fakeCanvas struct {
	fills    int
	displays int
}

func (c *fakeCanvas) Size() (x, y int16)                                   { return hal.ScreenWidth, hal.ScreenHeight }
func (c *fakeCanvas) SetPixel(x, y int16, col color.RGBA)                  {}
func (c *fakeCanvas) Display() error                                       { c.displays++; return nil }
func (c *fakeCanvas) SetScroll(line int16)                                 {}
func (c *fakeCanvas) SetRotation(rotation drivers.Rotation) error          { return nil }
func (c *fakeCanvas) FillRectangle(x, y, w, h int16, col color.RGBA) error { c.fills++; return nil }

type fakeDisplay struct{ c *fakeCanvas }

func (d fakeDisplay) Canvas() hal.Canvas { return d.c }

// fakeTouch answers controller commands for a pen held at a screen point.
type fakeTouch struct {
	cal     touch.Calibration
	pressed bool
	rawX    uint16
	rawY    uint16
	fail    bool
}

func (t *fakeTouch) press(x, y int) {
	t.pressed = true
	t.rawX, t.rawY = t.cal.Unmap(touch.Point{X: x, Y: y})
}

func (t *fakeTouch) release() { t.pressed = false }

func (t *fakeTouch) Bus() touch.Bus { return t }
func (t *fakeTouch) PenDown() bool  { return t.pressed }

func (t *fakeTouch) Exchange(cmd byte) (uint16, error) {
	if t.fail && cmd != touch.CmdPowerDown {
		return 0, errors.New("spi timeout")
	}
	switch cmd {
	case touch.CmdZ1:
		return 1500, nil
	case touch.CmdZ2:
		return 2500, nil
	case touch.CmdX:
		return t.rawX, nil
	case touch.CmdY:
		return t.rawY, nil
	}
	return 0, nil
}

type fakeSerial struct {
	in      []byte
	out     bytes.Buffer
	dropped int
}

func (s *fakeSerial) Dropped() int { return s.dropped }

func (s *fakeSerial) Buffered() int { return len(s.in) }

func (s *fakeSerial) ReadByte() (byte, error) {
	if len(s.in) == 0 {
		return 0, errors.New("empty")
	}
	c := s.in[0]
	s.in = s.in[1:]
	return c, nil
}

func (s *fakeSerial) Write(p []byte) (int, error) { return s.out.Write(p) }

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Now() time.Duration { return c.now }

type fakeHAL struct {
	log    *fakeLogger
	canvas *fakeCanvas
	touch  *fakeTouch
	serial *fakeSerial
	clock  *fakeClock
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:    &fakeLogger{},
		canvas: &fakeCanvas{},
		touch:  &fakeTouch{cal: touch.DefaultCalibration(hal.ScreenWidth, hal.ScreenHeight)},
		serial: &fakeSerial{},
		clock:  &fakeClock{},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{c: h.canvas} }
func (h *fakeHAL) Touch() hal.Touch     { return h.touch }
func (h *fakeHAL) Serial() hal.Serial   { return h.serial }
func (h *fakeHAL) Clock() hal.Clock     { return h.clock }

// tapAt presses at (x, y) for one step at time at, then releases and steps again.
func (h *fakeHAL) tapAt(step func() error, x, y int, at time.Duration) error {
	h.clock.now = at
	h.touch.press(x, y)
	if err := step(); err != nil {
		return err
	}
	h.touch.release()
	h.clock.now = at + 10*time.Millisecond
	return step()
}
