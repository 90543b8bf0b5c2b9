//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cydpanel/app"
	"cydpanel/hal"
	"cydpanel/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var configPath string
	var calibrate, version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Serial, "serial", "stdio", `Host link: "stdio", "none", or a serial device path.`)
	flag.IntVar(&cfg.Baud, "baud", 115200, "Baud rate for a serial device.")
	flag.StringVar(&cfg.TouchSPI, "touch-spi", "", "Read a real XPT2046 from this spidev (e.g. /dev/spidev0.1).")
	flag.StringVar(&cfg.TouchIRQ, "touch-irq", "", "Pen-interrupt GPIO for -touch-spi (e.g. GPIO17).")
	flag.StringVar(&configPath, "config", "", "TOML file overriding panel timing and calibration.")
	flag.BoolVar(&calibrate, "calibrate", false, "Run the touch calibration console.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	panelCfg := app.DefaultConfig()
	if configPath != "" {
		if err := app.LoadConfigFile(configPath, &panelCfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if calibrate {
		panelCfg.Calibrate = true
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, panelCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, cfg.HostConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
