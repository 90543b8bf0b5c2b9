//go:build linux && !tinygo

package hal

import (
	"fmt"

	"cydpanel/panel/touch"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// periphTouch drives an XPT2046 wired to a Linux SBC. spidev owns the chip
// select, so one Tx is one exchange.
type periphTouch struct {
	port spi.PortCloser
	conn spi.Conn
	irq  gpio.PinIO
}

func openPeriphTouch(dev, irqName string) (*periphTouch, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph init: %w", err)
	}
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dev, err)
	}
	conn, err := port.Connect(1*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect %s: %w", dev, err)
	}

	t := &periphTouch{port: port, conn: conn}
	if irqName != "" {
		pin := gpioreg.ByName(irqName)
		if pin == nil {
			port.Close()
			return nil, fmt.Errorf("touch irq %s: no such pin", irqName)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			port.Close()
			return nil, fmt.Errorf("touch irq %s: %w", irqName, err)
		}
		t.irq = pin
	}
	return t, nil
}

func (t *periphTouch) Bus() touch.Bus { return periphBus{conn: t.conn} }

// PenDown follows the active-low interrupt line. Without one, every poll
// goes on to the pressure check.
func (t *periphTouch) PenDown() bool {
	if t.irq == nil {
		return true
	}
	return t.irq.Read() == gpio.Low
}

type periphBus struct {
	conn spi.Conn
}

func (b periphBus) Exchange(cmd byte) (uint16, error) {
	w := [3]byte{cmd, 0, 0}
	var r [3]byte
	if err := b.conn.Tx(w[:], r[:]); err != nil {
		return 0, fmt.Errorf("%w: cmd %#02x: %v", touch.ErrBus, cmd, err)
	}
	return touch.Decode12(r[1], r[2]), nil
}
