//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"flipview/app"
	"flipview/hal"
	"flipview/internal/buildinfo"
	"flipview/internal/config"
)

func main() {
	d := config.Default()
	configPath := flag.String("config", config.DefaultFile, "YAML configuration file.")
	dump := flag.Bool("dump-config", false, "Print the effective configuration and exit.")
	version := flag.Bool("version", false, "Print the build version and exit.")
	flag.Bool("headless", d.Headless, "Run without a window.")
	flag.Int("hz", d.Hz, "Tick rate in headless mode.")
	flag.Uint64("ticks", d.Ticks, "Stop after N ticks in headless mode (0 = run until Start).")
	flag.Int("scale", d.Scale, "Window scale factor.")
	flag.String("asset", d.Asset, "Raw BGR image to show (default: built-in test card).")
	flag.String("manifest", d.Manifest, "YAML manifest describing the image to show.")
	flag.Int("width", d.Width, "Image width in pixels.")
	flag.Int("height", d.Height, "Image height in pixels.")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := config.Load(*configPath, flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *dump {
		if err := config.Dump(os.Stdout, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, app.Config{Asset: cfg.Source()})
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Enabled: true, Hz: cfg.Hz, Ticks: cfg.Ticks})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{Scale: cfg.Scale}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
