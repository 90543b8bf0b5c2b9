//go:build tinygo && esp32

package hal

import (
	"machine"
	"time"

	"cydpanel/panel/touch"

	"tinygo.org/x/drivers/ili9341"
)

// ESP32-2432S028 ("cheap yellow display") wiring.
const (
	lcdSCK   = machine.Pin(14)
	lcdSDO   = machine.Pin(13)
	lcdSDI   = machine.Pin(12)
	lcdCS    = machine.Pin(15)
	lcdDC    = machine.Pin(2)
	lcdBL    = machine.Pin(21)
	touchCLK = machine.Pin(25)
	touchDIN = machine.Pin(32)
	touchOUT = machine.Pin(39)
	touchCS  = machine.Pin(33)
	touchIRQ = machine.Pin(36)
)

type cydHAL struct {
	logger *uartLogger
	lcd    *ili9341.Device
	touch  *cydTouch
	clock  *tinyGoClock
}

// New returns the CYD HAL. The display sits on HSPI, the touch controller
// on its own VSPI pins, and the host link is the USB UART at 115200 8N1.
func New() HAL {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       lcdSCK,
		SDO:       lcdSDO,
		SDI:       lcdSDI,
		Frequency: 40_000_000,
	})
	lcd := ili9341.NewSPI(machine.SPI0, lcdDC, lcdCS, machine.NoPin)
	lcd.Configure(ili9341.Config{Rotation: ili9341.Rotation90})

	lcdBL.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcdBL.High()

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       touchCLK,
		SDO:       touchDIN,
		SDI:       touchOUT,
		Frequency: 1_000_000,
	})
	touchCS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	touchIRQ.Configure(machine.PinConfig{Mode: machine.PinInput})

	return &cydHAL{
		logger: &uartLogger{uart: machine.Serial},
		lcd:    lcd,
		touch:  &cydTouch{bus: touch.NewSPIBus(machine.SPI1, touchCS), irq: touchIRQ},
		clock:  newTinyGoClock(),
	}
}

func (h *cydHAL) Logger() Logger   { return h.logger }
func (h *cydHAL) Display() Display { return lcdDisplay{lcd: h.lcd} }
func (h *cydHAL) Touch() Touch     { return h.touch }
func (h *cydHAL) Serial() Serial   { return machine.Serial }
func (h *cydHAL) Clock() Clock     { return h.clock }

type lcdDisplay struct {
	lcd *ili9341.Device
}

func (d lcdDisplay) Canvas() Canvas { return d.lcd }

type cydTouch struct {
	bus *touch.SPIBus
	irq machine.Pin
}

func (t *cydTouch) Bus() touch.Bus { return t.bus }

// PenDown reads the active-low PENIRQ line.
func (t *cydTouch) PenDown() bool { return !t.irq.Get() }

type tinyGoClock struct {
	boot time.Time
}

func newTinyGoClock() *tinyGoClock { return &tinyGoClock{boot: time.Now()} }

func (c *tinyGoClock) Now() time.Duration { return time.Since(c.boot) }

type uartLogger struct {
	uart machine.Serialer
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
