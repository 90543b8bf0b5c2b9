// Command hostbridge feeds a cydpanel with host telemetry over USB serial
// and runs the actions tapped on it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"cydpanel/internal/bridge"
	"cydpanel/internal/buildinfo"
)

func main() {
	configPath := flag.String("config", "/etc/cydpanel/bridge.toml", "Path to the bridge TOML config.")
	port := flag.String("port", "", "Serial device (overrides config; empty = discover).")
	verbose := flag.Bool("v", false, "Log at debug level.")
	version := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := bridge.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.Port = *port
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", buildinfo.Short(), "port", cfg.Port, "interval", cfg.Interval.Duration)
	b := bridge.New(cfg, logger, bridge.NewSystemCollector(cfg), bridge.ExecRunner{})
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("bridge stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("received shutdown signal")
}
