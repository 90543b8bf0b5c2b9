// Package input turns the sampler's continuous stream into discrete taps.
package input

import (
	"time"

	"cydpanel/panel/touch"
)

// DefaultWindow is the minimum spacing between two accepted taps.
const DefaultWindow = 300 * time.Millisecond

// Tap is one accepted touch.
type Tap struct {
	Point touch.Point
	At    time.Duration
}

// Gate is an edge-style debouncer. Holding a finger down produces at most
// one tap per window.
type Gate struct {
	window time.Duration
	cal    touch.Calibration
	last   time.Duration
}

// NewGate returns a gate whose last accepted time is boot (zero).
func NewGate(window time.Duration, cal touch.Calibration) *Gate {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Gate{window: window, cal: cal}
}

// OnSample feeds one poll result. Rejected or absent samples leave the last
// accepted time untouched.
func (g *Gate) OnSample(s touch.RawSample, ok bool, now time.Duration) (Tap, bool) {
	if !ok {
		return Tap{}, false
	}
	if now-g.last <= g.window {
		return Tap{}, false
	}
	g.last = now
	return Tap{Point: g.cal.Map(s), At: now}, true
}

// LastAccepted reports when the previous tap was emitted.
func (g *Gate) LastAccepted() time.Duration { return g.last }
