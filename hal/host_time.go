//go:build !tinygo

package hal

import "time"

type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Now() time.Duration { return time.Since(c.start) }
