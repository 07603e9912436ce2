// Command robotsim runs a batch of assistive-robot scenarios with the tuned
// decision policy, logs every run, and stores results in SQLite.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/carebot/internal/config"
	"github.com/talgya/carebot/internal/metrics"
	"github.com/talgya/carebot/internal/persistence"
	"github.com/talgya/carebot/internal/policy"
	"github.com/talgya/carebot/internal/runner"
)

func main() {
	var scenariosPath, paramsPath, dbPath, set string
	var verbose bool
	flag.StringVar(&scenariosPath, "scenarios", "config/scenarios.yaml", "scenario catalog file")
	flag.StringVar(&paramsPath, "params", "config/params.yaml", "policy parameters file")
	flag.StringVar(&dbPath, "db", "data/carebot.db", "results database (empty to skip persistence)")
	flag.StringVar(&set, "set", "standard", "scenario set to run (or 'all')")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	scenarios, err := config.LoadScenarios(scenariosPath, set)
	if err != nil {
		slog.Warn("falling back to built-in scenarios", "error", err)
		scenarios = config.DefaultScenarios()
	}

	cfg, err := config.LoadParams(paramsPath)
	if err != nil {
		slog.Error("failed to load params", "error", err)
		os.Exit(1)
	}

	pol, err := policy.New(cfg)
	if err != nil {
		slog.Error("failed to build policy", "error", err)
		os.Exit(1)
	}

	slog.Info("running scenarios", "set", set, "count", len(scenarios))
	results := runner.RunAll(scenarios, pol, "tuned")

	report := metrics.Compute(results)
	fmt.Println(report.Format("PERFORMANCE METRICS"))

	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			slog.Error("failed to create data dir", "error", err)
			os.Exit(1)
		}
		db, err := persistence.Open(dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.SaveResults(results); err != nil {
			slog.Error("failed to save results", "error", err)
			os.Exit(1)
		}
		slog.Info("results stored", "db", dbPath)
	}
}
