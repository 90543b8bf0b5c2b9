package app

import (
	"errors"
	"time"

	"cydpanel/hal"
	"cydpanel/internal/buildinfo"
	"cydpanel/panel/input"
	"cydpanel/panel/link"
	"cydpanel/panel/touch"
	"cydpanel/panel/ui"
	"cydpanel/panel/view"
)

// Stats counts what the control loop has seen since boot.
type Stats struct {
	Taps        int
	Lines       int
	Telemetry   int
	Ignored     int
	Malformed   int
	Overflows   int
	Dropped     int
	TouchErrors int
	DrawErrors  int
	Sent        int
}

// Panel is the control loop. It is the only owner of the interaction state
// and the current telemetry snapshot.
type Panel struct {
	cfg     Config
	log     hal.Logger
	clock   hal.Clock
	serial  hal.Serial
	sampler *touch.Sampler
	gate    *input.Gate
	machine ui.Machine
	lines   *link.LineBuffer
	view    *view.Renderer

	state   ui.AppState
	snap    link.Snapshot
	stats   Stats
	started bool
}

// NewPanel wires the panel to h.
func NewPanel(h hal.HAL, cfg Config) *Panel {
	cfg = cfg.normalize()
	t := h.Touch()
	return &Panel{
		cfg:     cfg,
		log:     h.Logger(),
		clock:   h.Clock(),
		serial:  h.Serial(),
		sampler: touch.NewSampler(t.Bus(), t, cfg.Threshold),
		gate:    input.NewGate(cfg.Debounce, cfg.Calibration),
		machine: ui.Machine{Feedback: cfg.Feedback},
		lines:   link.NewLineBuffer(cfg.LineLimit),
		view:    view.NewRenderer(h.Display().Canvas()),
		state:   ui.Initial(),
		snap:    link.Empty(),
	}
}

func (p *Panel) State() ui.AppState      { return p.state }
func (p *Panel) Snapshot() link.Snapshot { return p.snap }
func (p *Panel) Stats() Stats            { return p.stats }

// Step runs one pass of the loop: touch, then serial, then the clock. It
// never blocks and never fails; faults are logged and counted.
func (p *Panel) Step() error {
	now := p.clock.Now()
	if !p.started {
		p.started = true
		logKV(p.log, "boot", "version", buildinfo.Short())
		p.draw(ui.RegionFull)
	}

	p.pollTouch(now)
	p.pollSerial(now)
	p.dispatch(ui.TickEvent(), now)
	return nil
}

func (p *Panel) pollTouch(now time.Duration) {
	sample, ok, err := p.sampler.Poll()
	if err != nil {
		p.stats.TouchErrors++
		logKV(p.log, "touch", "err", err)
		ok = false
	}
	tap, ok := p.gate.OnSample(sample, ok, now)
	if !ok {
		return
	}
	p.stats.Taps++
	target := ui.Classify(tap.Point, p.state)
	p.dispatch(ui.TapEvent(target), now)
}

// dropCounter is implemented by serial links that can lose input before
// the panel reads it.
type dropCounter interface {
	Dropped() int
}

func (p *Panel) pollSerial(now time.Duration) {
	if dc, ok := p.serial.(dropCounter); ok {
		if d := dc.Dropped(); d > p.stats.Dropped {
			logKV(p.log, "serial", "dropped", d-p.stats.Dropped)
			p.stats.Dropped = d
		}
	}
	for n := p.serial.Buffered(); n > 0; n-- {
		c, err := p.serial.ReadByte()
		if err != nil {
			return
		}
		line, err := p.lines.Push(c)
		if errors.Is(err, link.ErrLineTooLong) {
			p.stats.Overflows++
			logKV(p.log, "serial", "err", err, "limit", p.cfg.LineLimit)
			continue
		}
		if line == nil {
			continue
		}
		p.stats.Lines++
		p.handleLine(line, now)
	}
}

func (p *Panel) handleLine(line []byte, now time.Duration) {
	snap, err := link.Decode(line)
	switch {
	case errors.Is(err, link.ErrNotObject):
		p.stats.Ignored++
		return
	case err != nil:
		p.stats.Malformed++
		logKV(p.log, "telemetry", "err", err)
		return
	}
	p.snap = snap
	p.stats.Telemetry++
	p.dispatch(ui.TelemetryEvent(), now)
}

func (p *Panel) dispatch(ev ui.Event, now time.Duration) {
	next, effects := p.machine.Step(p.state, ev, now)
	if ev.Kind == ui.EventTap && next != p.state {
		logKV(p.log, "tap", "target", ev.Target.String(), "state", next.String())
	}
	p.state = next
	for _, e := range effects {
		switch e.Kind {
		case ui.EffectRedraw:
			p.draw(e.Region)
		case ui.EffectTransmit:
			p.transmit(e.Command)
		}
	}
}

func (p *Panel) draw(region ui.Region) {
	if err := p.view.Draw(region, p.state, p.snap); err != nil {
		p.stats.DrawErrors++
		logKV(p.log, "draw", "region", region.String(), "err", err)
	}
}

func (p *Panel) transmit(c link.Command) {
	line := append(link.EncodeCommand(c.Action), '\n')
	if _, err := p.serial.Write(line); err != nil {
		logKV(p.log, "send", "action", c.Action, "err", err)
		return
	}
	p.stats.Sent++
	logKV(p.log, "send", "action", c.Action)
}
