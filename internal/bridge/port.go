package bridge

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

var ErrNoPort = errors.New("bridge: no panel serial port found")

// Port is an open serial link to the panel.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// usbBridges are USB-serial chips found on ESP32 boards, by product
// description fragment and vendor ID.
var usbBridges = []struct {
	product string
	vid     string
}{
	{"CP210", "10C4"},
	{"CH340", "1A86"},
	{"USB Serial", ""},
}

var fallbackPorts = []string{"/dev/ttyUSB0", "/dev/ttyACM0"}

// SelectPort picks the panel's port from an enumeration. exists reports
// whether a fallback device node is present.
func SelectPort(ports []*enumerator.PortDetails, exists func(string) bool) (string, error) {
	for _, p := range ports {
		if p == nil || !p.IsUSB {
			continue
		}
		for _, b := range usbBridges {
			if strings.Contains(p.Product, b.product) || (b.vid != "" && strings.EqualFold(p.VID, b.vid)) {
				return p.Name, nil
			}
		}
	}
	for _, name := range fallbackPorts {
		if exists(name) {
			return name, nil
		}
	}
	return "", ErrNoPort
}

// FindPort enumerates the system's serial ports and selects one.
func FindPort() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		// Enumeration can fail without udev; the fallbacks still apply.
		ports = nil
	}
	return SelectPort(ports, fileExists)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// readTimeout bounds each Read so the read loop notices cancellation.
const readTimeout = 500 * time.Millisecond

// OpenSerial opens name at baud with DTR and RTS released, which keeps the
// ESP32 auto-reset circuit from rebooting the panel on connect.
func OpenSerial(name string, baud int) (Port, error) {
	p, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	_ = p.SetDTR(false)
	_ = p.SetRTS(false)
	if err := p.SetReadTimeout(readTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	_ = p.ResetInputBuffer()
	return p, nil
}
