//go:build !tinygo

package app

import (
	"cydpanel/internal/config"
)

type fileCalibration struct {
	RawXMin int `toml:"raw_x_min"`
	RawXMax int `toml:"raw_x_max"`
	RawYMin int `toml:"raw_y_min"`
	RawYMax int `toml:"raw_y_max"`
}

type fileConfig struct {
	Debounce    config.Duration `toml:"debounce"`
	Feedback    config.Duration `toml:"feedback"`
	Threshold   int             `toml:"threshold"`
	LineLimit   int             `toml:"line_limit"`
	Yield       config.Duration `toml:"yield"`
	Calibrate   bool            `toml:"calibrate"`
	Calibration fileCalibration `toml:"calibration"`
}

// LoadConfigFile overlays the TOML file at path onto cfg. A missing file
// leaves cfg unchanged.
func LoadConfigFile(path string, cfg *Config) error {
	fc := fileConfig{
		Debounce:  config.Duration{Duration: cfg.Debounce},
		Feedback:  config.Duration{Duration: cfg.Feedback},
		Threshold: cfg.Threshold,
		LineLimit: cfg.LineLimit,
		Yield:     config.Duration{Duration: cfg.Yield},
		Calibrate: cfg.Calibrate,
		Calibration: fileCalibration{
			RawXMin: cfg.Calibration.RawXMin,
			RawXMax: cfg.Calibration.RawXMax,
			RawYMin: cfg.Calibration.RawYMin,
			RawYMax: cfg.Calibration.RawYMax,
		},
	}
	if err := config.DecodeFile(path, &fc); err != nil {
		return err
	}

	cfg.Debounce = fc.Debounce.Duration
	cfg.Feedback = fc.Feedback.Duration
	cfg.Threshold = fc.Threshold
	cfg.LineLimit = fc.LineLimit
	cfg.Yield = fc.Yield.Duration
	cfg.Calibrate = fc.Calibrate
	cfg.Calibration.RawXMin = fc.Calibration.RawXMin
	cfg.Calibration.RawXMax = fc.Calibration.RawXMax
	cfg.Calibration.RawYMin = fc.Calibration.RawYMin
	cfg.Calibration.RawYMax = fc.Calibration.RawYMax
	return nil
}
