// Package touch reads an XPT2046 resistive touch controller and maps its raw
// 12-bit readings onto the 320x240 panel.
package touch

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"
	drvtouch "tinygo.org/x/drivers/touch"
)

// Controller command bytes.
const (
	CmdZ1        byte = 0xB1
	CmdZ2        byte = 0xC1
	CmdX         byte = 0xD1
	CmdY         byte = 0x91
	CmdPowerDown byte = 0x80
)

const (
	// ADCMax is the largest 12-bit reading.
	ADCMax = 4095

	// DefaultThreshold is the pressure a sample must exceed to count as a touch.
	DefaultThreshold = 400
)

var ErrBus = errors.New("touch bus")

// RawSample is one pressure/position reading straight off the controller.
type RawSample struct {
	Z int
	X uint16
	Y uint16
}

// Bus performs one controller exchange: select, command byte, two clocked
// reads, release. It returns the reconstructed 12-bit value.
type Bus interface {
	Exchange(cmd byte) (uint16, error)
}

// PenDetector reports the controller's pen-interrupt line.
type PenDetector interface {
	PenDown() bool
}

// Pin is the chip-select output. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Decode12 rebuilds a reading from the two bytes clocked out after a command.
func Decode12(hi, lo byte) uint16 {
	return (uint16(hi)<<8 | uint16(lo)) >> 3
}

// SPIBus runs exchanges over a drivers.SPI with a dedicated chip select.
type SPIBus struct {
	spi drivers.SPI
	cs  Pin
	tx  [3]byte
	rx  [3]byte
}

func NewSPIBus(spi drivers.SPI, cs Pin) *SPIBus {
	cs.High()
	return &SPIBus{spi: spi, cs: cs}
}

func (b *SPIBus) Exchange(cmd byte) (uint16, error) {
	b.tx = [3]byte{cmd, 0, 0}
	b.rx = [3]byte{}
	b.cs.Low()
	err := b.spi.Tx(b.tx[:], b.rx[:])
	b.cs.High()
	if err != nil {
		return 0, fmt.Errorf("%w: cmd %#02x: %v", ErrBus, cmd, err)
	}
	return Decode12(b.rx[1], b.rx[2]), nil
}

// Sampler polls the controller once per call.
type Sampler struct {
	bus       Bus
	pen       PenDetector
	threshold int
}

// NewSampler returns a sampler. A threshold <= 0 selects DefaultThreshold.
func NewSampler(bus Bus, pen PenDetector, threshold int) *Sampler {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Sampler{bus: bus, pen: pen, threshold: threshold}
}

// Poll returns a sample when the panel is pressed harder than the threshold.
//
// With the pen line released there is no bus traffic at all. Otherwise the
// controller is always left powered down, even when an exchange fails.
func (s *Sampler) Poll() (RawSample, bool, error) {
	if s.pen != nil && !s.pen.PenDown() {
		return RawSample{}, false, nil
	}

	sample, ok, err := s.read()
	if _, pdErr := s.bus.Exchange(CmdPowerDown); pdErr != nil && err == nil {
		err = pdErr
	}
	if err != nil {
		return RawSample{}, false, err
	}
	return sample, ok, nil
}

func (s *Sampler) read() (RawSample, bool, error) {
	z1, err := s.bus.Exchange(CmdZ1)
	if err != nil {
		return RawSample{}, false, err
	}
	z2, err := s.bus.Exchange(CmdZ2)
	if err != nil {
		return RawSample{}, false, err
	}
	z := int(z1) + (ADCMax - int(z2))
	if z <= s.threshold {
		return RawSample{}, false, nil
	}

	x, err := s.bus.Exchange(CmdX)
	if err != nil {
		return RawSample{}, false, err
	}
	y, err := s.bus.Exchange(CmdY)
	if err != nil {
		return RawSample{}, false, err
	}
	return RawSample{Z: z, X: x, Y: y}, true, nil
}

// ReadTouchPoint implements the drivers touch.Pointer interface with raw
// controller units. Z is zero when there is no touch or the bus failed.
func (s *Sampler) ReadTouchPoint() drvtouch.Point {
	sample, ok, err := s.Poll()
	if err != nil || !ok {
		return drvtouch.Point{}
	}
	return drvtouch.Point{X: int(sample.X), Y: int(sample.Y), Z: sample.Z}
}

var _ drvtouch.Pointer = (*Sampler)(nil)
