// Package main runs the habitat simulation headlessly: it advances the
// world one day at a time until the step budget runs out or no animal
// species survives, logging windowed stats and optionally writing them
// to CSV.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"habitat/config"
	"habitat/sim"
	"habitat/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	steps := flag.Int("steps", 1000, "Number of simulated days to run")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	outputDir := flag.String("output", "", "Output directory for CSV stats (empty = disabled)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	s, err := sim.New(cfg, *seed)
	if err != nil {
		slog.Error("building simulator", "error", err)
		os.Exit(1)
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("opening output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("writing config", "error", err)
		os.Exit(1)
	}

	slog.Info("run starting",
		"seed", *seed,
		"steps", *steps,
		"field", cfg.Field,
		"population", s.Stats())

	collector := telemetry.NewCollector(cfg.Telemetry.Window)
	for day := 0; day < *steps; day++ {
		collector.StartStep()
		report := s.Step()
		collector.Record(report)

		if collector.ShouldFlush(s.StepCount()) {
			food, ages := telemetry.Samples(s.Animals())
			window := collector.Flush(s.StepCount(), s.Stats(), food, ages)
			slog.Info("window", "stats", window)
			if err := out.WriteWindow(window); err != nil {
				slog.Error("writing stats", "error", err)
				os.Exit(1)
			}
		}

		if !s.Viable() {
			slog.Info("population collapsed", "day", s.StepCount())
			break
		}
	}

	slog.Info("run finished", "days", s.StepCount(), "population", s.Stats())
}
