package bridge

import (
	"testing"

	"cydpanel/panel/link"
)

func TestShape(t *testing.T) {
	s := Sample{
		CPU:         12.5,
		MemTotal:    4096 * mib,
		MemUsed:     1024*mib + 5,
		MemPercent:  25,
		DiskTotal:   64 * gib,
		DiskUsed:    16*gib + gib/2,
		DiskPercent: 25.8,
		Temps: map[string]float64{
			"coretemp_core_0":       44,
			"cpu_thermal_input":     51.5,
			"nvme_composite_sensor": 38,
		},
		Addrs:  map[string]string{"wlan0": "10.0.0.2", "lo": "127.0.0.1", "uap0": ""},
		Uptime: 3725,
	}
	r := Shape(s, []string{"wlan0", "uap0", "eth0"})

	if r.RAM != (Usage{Total: 4096, Used: 1024, Percent: 25}) {
		t.Fatalf("RAM = %+v", r.RAM)
	}
	if r.Disk != (Usage{Total: 64, Used: 16, Percent: 25.8}) {
		t.Fatalf("Disk = %+v", r.Disk)
	}
	if r.Temp != 51.5 {
		t.Fatalf("Temp = %v, want cpu_thermal reading", r.Temp)
	}
	if len(r.Net) != 1 || r.Net["wlan0"] != "10.0.0.2" {
		t.Fatalf("Net = %v", r.Net)
	}
}

func TestPickTemp(t *testing.T) {
	tests := []struct {
		temps map[string]float64
		want  float64
	}{
		{nil, 0},
		{map[string]float64{"acpitz": 30}, 0},
		{map[string]float64{"coretemp_core_1": 47, "coretemp_core_0": 45}, 45},
	}
	for _, tt := range tests {
		if got := pickTemp(tt.temps); got != tt.want {
			t.Fatalf("pickTemp(%v) = %v, want %v", tt.temps, got, tt.want)
		}
	}
}

func TestReportLineDecodesOnPanel(t *testing.T) {
	r := Report{
		CPU:    42,
		RAM:    Usage{Total: 3800, Used: 900, Percent: 23.7},
		Disk:   Usage{Total: 58, Used: 12, Percent: 20.6},
		Temp:   48.2,
		Net:    map[string]string{"uap0": "192.168.4.1", "wlan1": "10.1.1.9"},
		Uptime: 90061,
	}
	line, err := r.Line()
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line[len(line)-1] != '\n' {
		t.Fatalf("Line() = %q, want trailing newline", line)
	}
	snap, err := link.Decode(line[:len(line)-1])
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := link.Snapshot{
		CPU:      42,
		RAM:      link.Usage{Total: 3800, Used: 900, Percent: 23.7},
		Disk:     link.Usage{Total: 58, Used: 12, Percent: 20.6},
		Temp:     48.2,
		Net:      link.Net{Primary: "192.168.4.1", Secondary: "10.1.1.9"},
		Uptime:   90061,
		Received: true,
	}
	if snap != want {
		t.Fatalf("Decode() = %+v, want %+v", snap, want)
	}
}

func TestReportLineEmptyNet(t *testing.T) {
	line, err := Report{}.Line()
	if err != nil {
		t.Fatal(err)
	}
	snap, err := link.Decode(line)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if snap.Net.Primary != link.NA || snap.Net.Secondary != link.NA {
		t.Fatalf("Net = %+v, want N/A", snap.Net)
	}
}
