package app

import (
	"time"

	"cydpanel/hal"
	"cydpanel/panel/input"
	"cydpanel/panel/link"
	"cydpanel/panel/touch"
	"cydpanel/panel/ui"
)

// Config holds the panel's tunables.
type Config struct {
	// Debounce is the minimum spacing between accepted taps.
	Debounce time.Duration
	// Feedback is how long the "Sent!" toast stays up.
	Feedback time.Duration
	// Threshold is the touch pressure a sample must exceed.
	Threshold int
	// LineLimit caps one inbound serial line.
	LineLimit int
	// Calibration maps raw touch readings to screen pixels.
	Calibration touch.Calibration
	// Yield is the pause between control loop passes in Run.
	Yield time.Duration
	// Calibrate starts the touch calibration console instead of the panel.
	Calibrate bool
}

// DefaultConfig returns the factory settings.
func DefaultConfig() Config {
	return Config{
		Debounce:    input.DefaultWindow,
		Feedback:    ui.DefaultFeedback,
		Threshold:   touch.DefaultThreshold,
		LineLimit:   link.MaxLine,
		Calibration: touch.DefaultCalibration(hal.ScreenWidth, hal.ScreenHeight),
		Yield:       5 * time.Millisecond,
	}
}

// normalize fills zero fields from DefaultConfig.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.Debounce <= 0 {
		c.Debounce = d.Debounce
	}
	if c.Feedback <= 0 {
		c.Feedback = d.Feedback
	}
	if c.Threshold <= 0 {
		c.Threshold = d.Threshold
	}
	if c.LineLimit <= 0 {
		c.LineLimit = d.LineLimit
	}
	if c.Calibration.Width <= 0 || c.Calibration.Height <= 0 {
		c.Calibration = d.Calibration
	}
	if c.Yield < 0 {
		c.Yield = d.Yield
	}
	return c
}
