package app

import (
	"fmt"
	"image/color"
	"time"

	"cydpanel/hal"
	"cydpanel/internal/buildinfo"
	"cydpanel/panel/input"
	"cydpanel/panel/touch"
	"cydpanel/panel/view"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Calibration targets: the four corners and the center.
var calTargets = [5]touch.Point{
	{X: 20, Y: 20},
	{X: 300, Y: 20},
	{X: 160, Y: 120},
	{X: 20, Y: 220},
	{X: 300, Y: 220},
}

const (
	calSampleWindow = 100 * time.Millisecond
	calConsoleTop   = 150
	calConsoleH     = 60
)

var (
	calBlack  = color.RGBA{A: 255}
	calRed    = color.RGBA{R: 255, A: 255}
	calYellow = color.RGBA{R: 255, G: 255, A: 255}
	calWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Calibrator is the touch calibration console: it shows crosshairs at known
// positions and, for every press, the raw controller readings next to the
// mapped screen point.
type Calibrator struct {
	log     hal.Logger
	clock   hal.Clock
	canvas  hal.Canvas
	sampler *touch.Sampler
	gate    *input.Gate
	cal     touch.Calibration
	term    *tinyterm.Terminal
	started bool
	samples int
}

func NewCalibrator(h hal.HAL, cfg Config) *Calibrator {
	cfg = cfg.normalize()
	t := h.Touch()
	c := h.Display().Canvas()
	return &Calibrator{
		log:     h.Logger(),
		clock:   h.Clock(),
		canvas:  c,
		sampler: touch.NewSampler(t.Bus(), t, cfg.Threshold),
		gate:    input.NewGate(calSampleWindow, cfg.Calibration),
		cal:     cfg.Calibration,
		term:    tinyterm.NewTerminal(&strip{base: c, y0: calConsoleTop, h: calConsoleH}),
	}
}

func (c *Calibrator) start() {
	w, h := c.canvas.Size()
	_ = c.canvas.FillRectangle(0, 0, w, h, calBlack)
	for i, p := range calTargets {
		col := calRed
		if i == 2 {
			col = calYellow
		}
		_ = view.Crosshair(c.canvas, p.X, p.Y, col)
	}

	c.term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        12,
		FontOffset:        10,
		UseSoftwareScroll: true,
	})
	fmt.Fprintf(c.term, "calibration %s\r\ntouch the crosshairs\r\n", buildinfo.Short())
	_ = c.canvas.Display()
	logKV(c.log, "calibration", "version", buildinfo.Short())
}

// Step polls the controller once and reports an accepted press.
func (c *Calibrator) Step() error {
	if !c.started {
		c.started = true
		c.start()
	}

	raw, ok, err := c.sampler.Poll()
	if err != nil {
		logKV(c.log, "touch", "err", err)
		return nil
	}
	tap, ok := c.gate.OnSample(raw, ok, c.clock.Now())
	if !ok {
		return nil
	}
	c.samples++

	p := tap.Point
	_ = view.Dot(c.canvas, p.X, p.Y, calWhite)
	fmt.Fprintf(c.term, "raw x=%d y=%d z=%d -> %d,%d\r\n", raw.X, raw.Y, raw.Z, p.X, p.Y)
	_ = c.canvas.Display()
	logKV(c.log, "cal", "raw_x", raw.X, "raw_y", raw.Y, "z", raw.Z, "x", p.X, "y", p.Y)
	return nil
}

// Samples counts accepted presses.
func (c *Calibrator) Samples() int { return c.samples }

// strip presents a horizontal band of a canvas as a display of its own so
// the terminal scrolls without touching the crosshairs.
type strip struct {
	base hal.Canvas
	y0   int16
	h    int16
}

func (s *strip) Size() (x, y int16) {
	w, _ := s.base.Size()
	return w, s.h
}

func (s *strip) SetPixel(x, y int16, c color.RGBA) {
	if y < 0 || y >= s.h {
		return
	}
	s.base.SetPixel(x, s.y0+y, c)
}

func (s *strip) Display() error { return s.base.Display() }

func (s *strip) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if y < 0 {
		height += y
		y = 0
	}
	if y+height > s.h {
		height = s.h - y
	}
	if height <= 0 || width <= 0 {
		return nil
	}
	return s.base.FillRectangle(x, s.y0+y, width, height, c)
}

func (s *strip) SetScroll(line int16) {}

func (s *strip) SetRotation(rotation drivers.Rotation) error { return nil }
