package app

import (
	"time"

	"cydpanel/hal"
)

// New starts the panel with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the step function for cfg: the telemetry panel, or
// the calibration console when cfg.Calibrate is set.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	if cfg.Calibrate {
		return NewCalibrator(h, cfg).Step
	}
	return NewPanel(h, cfg).Step
}

// Run drives the step function forever (TinyGo/native entrypoint). A
// panic is shown on screen and halts the board.
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	defer func() {
		if v := recover(); v != nil {
			showFault(h, v)
			select {}
		}
	}()

	cfg = cfg.normalize()
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			logKV(h.Logger(), "step", "err", err)
		}
		time.Sleep(cfg.Yield)
	}
}
