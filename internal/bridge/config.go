// Package bridge is the host side of the panel link. It streams telemetry
// to the panel and runs the command configured for each action it sends.
package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"cydpanel/internal/config"
	"cydpanel/panel/link"
)

const (
	DefaultBaud     = 115200
	DefaultInterval = 2 * time.Second
	DefaultRetry    = 5 * time.Second
)

var ErrInvalidConfig = errors.New("bridge: invalid config")

// Config is the bridge configuration file.
type Config struct {
	// Port is the serial device. Empty means discover it.
	Port       string          `toml:"port"`
	Baud       int             `toml:"baud"`
	Interval   config.Duration `toml:"interval"`
	Retry      config.Duration `toml:"retry"`
	DiskPath   string          `toml:"disk_path"`
	Interfaces []string        `toml:"interfaces"`
	LogLevel   string          `toml:"log_level"`

	// Actions maps a panel action to the argv it runs.
	Actions map[string][]string `toml:"actions"`
}

const scriptDir = "/usr/local/lib/cydpanel"

// DefaultConfig mirrors the stock travel-server setup.
func DefaultConfig() Config {
	return Config{
		Baud:       DefaultBaud,
		Interval:   config.Duration{Duration: DefaultInterval},
		Retry:      config.Duration{Duration: DefaultRetry},
		DiskPath:   "/",
		Interfaces: []string{"wlan0", "wlan1", "uap0", "eth0", "usb0"},
		LogLevel:   "info",
		Actions: map[string][]string{
			"reset_network": {"sudo", scriptDir + "/full_network_reset.sh"},
			"fw_strict":     {"sudo", scriptDir + "/firewall_strict.sh"},
			"fw_maint":      {"sudo", scriptDir + "/firewall_maintenance.sh"},
			"start_smb":     {"sudo", scriptDir + "/start_fileserver.sh"},
			"stop_smb":      {"sudo", scriptDir + "/stop_fileserver.sh"},
			"reboot":        {"sudo", "reboot"},
			"shutdown":      {"sudo", "shutdown", "-h", "now"},
		},
	}
}

// LoadConfig reads path over the defaults. Entries in [actions] replace the
// default for that action only.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	defaults := cfg.Actions
	cfg.Actions = nil
	if err := config.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	merged := make(map[string][]string, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range cfg.Actions {
		merged[k] = v
	}
	cfg.Actions = merged
	return cfg, cfg.Validate()
}

// Validate reports the first problem found.
func (c Config) Validate() error {
	if c.Baud <= 0 {
		return fmt.Errorf("%w: baud %d", ErrInvalidConfig, c.Baud)
	}
	if c.Interval.Duration <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	var unknown []string
	for action, argv := range c.Actions {
		if !link.ValidAction(action) {
			unknown = append(unknown, action)
			continue
		}
		if len(argv) == 0 {
			return fmt.Errorf("%w: action %q has an empty command", ErrInvalidConfig, action)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown actions %s", ErrInvalidConfig, strings.Join(unknown, ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}
