package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cydpanel/panel/link"
)

// Bridge connects to the panel, keeps it fed with telemetry and runs the
// actions it sends. It reconnects whenever the link drops.
type Bridge struct {
	cfg       Config
	log       *slog.Logger
	collector Collector
	runner    Runner

	// Find and Open default to FindPort and OpenSerial.
	Find func() (string, error)
	Open func(name string, baud int) (Port, error)
}

func New(cfg Config, log *slog.Logger, c Collector, r Runner) *Bridge {
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{
		cfg:       cfg,
		log:       log,
		collector: c,
		runner:    r,
		Find:      FindPort,
		Open:      OpenSerial,
	}
}

// Run keeps a session open until ctx is done.
func (b *Bridge) Run(ctx context.Context) error {
	retry := b.cfg.Retry.Duration
	if retry <= 0 {
		retry = DefaultRetry
	}
	for {
		port, name, err := b.connect()
		if err != nil {
			b.log.Warn("panel not connected", "err", err, "retry", retry)
		} else {
			b.log.Info("connected", "port", name, "baud", b.cfg.Baud)
			err = b.Serve(ctx, port)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.log.Warn("link lost", "port", name, "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry):
		}
	}
}

func (b *Bridge) connect() (Port, string, error) {
	name := b.cfg.Port
	if name == "" {
		var err error
		if name, err = b.Find(); err != nil {
			return nil, "", err
		}
	}
	port, err := b.Open(name, b.cfg.Baud)
	if err != nil {
		return nil, name, err
	}
	return port, name, nil
}

// Serve runs one session on port and closes it. It returns the first
// read or write error, or ctx's error.
func (b *Bridge) Serve(ctx context.Context, port Port) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 2)
	go func() { errc <- b.readLoop(ctx, port) }()
	go func() { errc <- b.writeLoop(ctx, port) }()

	err := <-errc
	cancel()
	port.Close()
	<-errc
	if ctx.Err() != nil && err == nil {
		err = ctx.Err()
	}
	return err
}

func (b *Bridge) writeLoop(ctx context.Context, port Port) error {
	t := time.NewTicker(b.cfg.Interval.Duration)
	defer t.Stop()
	for {
		if err := b.sendReport(ctx, port); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (b *Bridge) sendReport(ctx context.Context, port Port) error {
	r, err := b.collector.Collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.log.Debug("partial telemetry", "err", err)
	}
	line, err := r.Line()
	if err != nil {
		return fmt.Errorf("encode telemetry: %w", err)
	}
	if _, err := port.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (b *Bridge) readLoop(ctx context.Context, port Port) error {
	lines := link.NewLineBuffer(link.MaxLine)
	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		for _, c := range buf[:n] {
			line, err := lines.Push(c)
			if err != nil {
				b.log.Debug("discarding long line", "limit", link.MaxLine)
				continue
			}
			if line != nil {
				b.HandleLine(ctx, line)
			}
		}
	}
}

// HandleLine acts on one line from the panel. Log lines and anything else
// that is not a command are dropped.
func (b *Bridge) HandleLine(ctx context.Context, line []byte) {
	cmd, err := link.DecodeCommand(line)
	switch {
	case errors.Is(err, link.ErrNotObject):
		b.log.Debug("panel", "line", string(line))
		return
	case err != nil:
		b.log.Warn("bad command", "line", string(line), "err", err)
		return
	}
	argv, ok := b.cfg.Actions[cmd.Action]
	if !ok || len(argv) == 0 {
		b.log.Warn("no command configured", "action", cmd.Action)
		return
	}
	b.log.Info("running action", "action", cmd.Action, "argv", argv)
	if err := b.runner.Run(ctx, argv); err != nil {
		b.log.Error("action failed", "action", cmd.Action, "err", err)
	}
}
