package hal

import (
	"errors"
	"image/color"
	"time"

	"cydpanel/panel/touch"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var ErrNotImplemented = errors.New("not implemented")

// Canvas is the display method set shared by ili9341.Device and the host
// framebuffer. It is what tinyfont, tinyterm and the panel renderer draw on.
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}

// Display provides access to the screen.
type Display interface {
	Canvas() Canvas
}

// Touch is a resistive touch controller: its exchange bus and its
// pen-interrupt line.
type Touch interface {
	Bus() touch.Bus
	PenDown() bool
}

// Serial is the non-blocking byte link to the host. machine.Serial
// satisfies it.
type Serial interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// Clock is a monotonic clock starting at boot.
type Clock interface {
	Now() time.Duration
}

// HAL provides the only contact point between the panel and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Touch() Touch
	Serial() Serial
	Clock() Clock
}

// Screen size in landscape orientation.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)
