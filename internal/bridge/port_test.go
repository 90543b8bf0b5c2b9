package bridge

import (
	"errors"
	"testing"

	"go.bug.st/serial/enumerator"
)

func TestSelectPort(t *testing.T) {
	none := func(string) bool { return false }
	tests := []struct {
		name   string
		ports  []*enumerator.PortDetails
		exists func(string) bool
		want   string
		err    error
	}{
		{
			name: "cp210x by product",
			ports: []*enumerator.PortDetails{
				{Name: "/dev/ttyS0"},
				{Name: "/dev/ttyUSB1", IsUSB: true, Product: "CP2102N USB to UART Bridge Controller"},
			},
			exists: none,
			want:   "/dev/ttyUSB1",
		},
		{
			name:   "ch340 by vendor id",
			ports:  []*enumerator.PortDetails{{Name: "/dev/ttyUSB2", IsUSB: true, VID: "1a86", PID: "7523"}},
			exists: none,
			want:   "/dev/ttyUSB2",
		},
		{
			name:   "unrelated usb device",
			ports:  []*enumerator.PortDetails{{Name: "/dev/ttyACM3", IsUSB: true, VID: "2341", Product: "Arduino Uno"}},
			exists: func(n string) bool { return n == "/dev/ttyACM0" },
			want:   "/dev/ttyACM0",
		},
		{
			name:   "fallback order",
			exists: func(string) bool { return true },
			want:   "/dev/ttyUSB0",
		},
		{
			name:   "nothing",
			ports:  []*enumerator.PortDetails{nil, {Name: "/dev/ttyS0", Product: "USB Serial"}},
			exists: none,
			err:    ErrNoPort,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectPort(tt.ports, tt.exists)
			if !errors.Is(err, tt.err) || got != tt.want {
				t.Fatalf("SelectPort() = %q, %v, want %q, %v", got, err, tt.want, tt.err)
			}
		})
	}
}
