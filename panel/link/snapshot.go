// Package link implements the newline-delimited JSON protocol spoken over
// the serial cable: telemetry from the host, commands back to it.
package link

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"cydpanel/internal/mathx"
)

// NA is shown for an address the host did not report.
const NA = "N/A"

var (
	ErrNotObject = errors.New("link: line is not a JSON object")
	ErrMalformed = errors.New("link: malformed JSON")
)

// Usage is a used/total pair with its percentage.
type Usage struct {
	Total   int
	Used    int
	Percent float64
}

// Net holds the two addresses shown on the status page.
type Net struct {
	Primary   string
	Secondary string
}

// Snapshot is the latest telemetry. RAM is in MB and disk in GB, as the
// host reports them.
type Snapshot struct {
	CPU      float64
	RAM      Usage
	Disk     Usage
	Temp     float64
	Net      Net
	Uptime   int
	Received bool
}

// Empty is the snapshot held before any telemetry arrives.
func Empty() Snapshot {
	return Snapshot{Net: Net{Primary: NA, Secondary: NA}}
}

type wireUsage struct {
	Total   float64 `json:"total"`
	Used    float64 `json:"used"`
	Percent float64 `json:"percent"`
}

type wireNet struct {
	Wlan0 *string `json:"wlan0,omitempty"`
	Wlan1 *string `json:"wlan1,omitempty"`
	Uap0  *string `json:"uap0,omitempty"`
}

type wireTelemetry struct {
	CPU    float64   `json:"cpu"`
	RAM    wireUsage `json:"ram"`
	Disk   wireUsage `json:"disk"`
	Temp   float64   `json:"temp"`
	Net    wireNet   `json:"net"`
	Uptime float64   `json:"uptime"`
}

// Decode parses one telemetry line. Missing fields take their zero value or
// NA. A field of the wrong type is treated as missing; the rest of the
// line still applies. The primary address is wlan0, falling back to uap0.
func Decode(line []byte) (Snapshot, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '{' {
		return Snapshot{}, ErrNotObject
	}

	var w wireTelemetry
	if err := json.Unmarshal(line, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	return Snapshot{
		CPU:    w.CPU,
		RAM:    w.RAM.usage(),
		Disk:   w.Disk.usage(),
		Temp:   w.Temp,
		Uptime: count(w.Uptime),
		Net: Net{
			Primary:   firstAddr(w.Net.Wlan0, w.Net.Uap0),
			Secondary: firstAddr(w.Net.Wlan1),
		},
		Received: true,
	}, nil
}

func (u wireUsage) usage() Usage {
	return Usage{Total: count(u.Total), Used: count(u.Used), Percent: u.Percent}
}

// count converts a wire number to a non-negative int that fits 32 bits,
// the int size on the panel.
func count(f float64) int {
	return int(mathx.Clamp(f, 0, math.MaxInt32))
}

func firstAddr(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return NA
}

// EncodeTelemetry renders s as a telemetry line without the trailing newline.
func EncodeTelemetry(s Snapshot) ([]byte, error) {
	w := wireTelemetry{
		CPU:    s.CPU,
		RAM:    wireUsage{Total: float64(s.RAM.Total), Used: float64(s.RAM.Used), Percent: s.RAM.Percent},
		Disk:   wireUsage{Total: float64(s.Disk.Total), Used: float64(s.Disk.Used), Percent: s.Disk.Percent},
		Temp:   s.Temp,
		Uptime: float64(s.Uptime),
		Net: wireNet{
			Wlan0: addrPtr(s.Net.Primary),
			Wlan1: addrPtr(s.Net.Secondary),
		},
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode telemetry: %w", err)
	}
	return b, nil
}

func addrPtr(s string) *string {
	if s == "" {
		s = NA
	}
	return &s
}
