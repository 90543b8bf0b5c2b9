package bridge

import (
	"encoding/json"
	"strings"
)

// Usage is one resource in telemetry units: MB for memory, GB for disk.
type Usage struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Percent float64 `json:"percent"`
}

// Report is one telemetry line as the panel expects it.
type Report struct {
	CPU    float64           `json:"cpu"`
	RAM    Usage             `json:"ram"`
	Disk   Usage             `json:"disk"`
	Temp   float64           `json:"temp"`
	Net    map[string]string `json:"net"`
	Uptime uint64            `json:"uptime"`
}

// Line renders r with its trailing newline.
func (r Report) Line() ([]byte, error) {
	if r.Net == nil {
		r.Net = map[string]string{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Sample is what the collector read before it is shaped into a Report.
type Sample struct {
	CPU        float64
	MemTotal   uint64
	MemUsed    uint64
	MemPercent float64

	DiskTotal   uint64
	DiskUsed    uint64
	DiskPercent float64

	// Temps maps sensor keys to degrees C.
	Temps map[string]float64
	// Addrs maps interface names to their first IPv4 address.
	Addrs  map[string]string
	Uptime uint64
}

const (
	mib = 1 << 20
	gib = 1 << 30
)

// thermalSensors lists the sensor key prefixes read for temp, best first.
var thermalSensors = []string{"cpu_thermal", "coretemp"}

// Shape converts s to a Report, keeping only the interfaces listed.
func Shape(s Sample, interfaces []string) Report {
	r := Report{
		CPU:    s.CPU,
		RAM:    Usage{Total: s.MemTotal / mib, Used: s.MemUsed / mib, Percent: s.MemPercent},
		Disk:   Usage{Total: s.DiskTotal / gib, Used: s.DiskUsed / gib, Percent: s.DiskPercent},
		Temp:   pickTemp(s.Temps),
		Net:    map[string]string{},
		Uptime: s.Uptime,
	}
	for _, name := range interfaces {
		if addr, ok := s.Addrs[name]; ok && addr != "" {
			r.Net[name] = addr
		}
	}
	return r
}

func pickTemp(temps map[string]float64) float64 {
	for _, prefix := range thermalSensors {
		best, found := "", false
		for key := range temps {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			// Lowest key keeps the pick stable across reads.
			if !found || key < best {
				best, found = key, true
			}
		}
		if found {
			return temps[best]
		}
	}
	return 0
}
