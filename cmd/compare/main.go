// Command compare runs the same scenario set with the tuned policy and the
// naive baseline, then prints a head-to-head comparison.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/carebot/internal/config"
	"github.com/talgya/carebot/internal/metrics"
	"github.com/talgya/carebot/internal/policy"
	"github.com/talgya/carebot/internal/runner"
)

func main() {
	var scenariosPath, paramsPath, set string
	flag.StringVar(&scenariosPath, "scenarios", "config/scenarios.yaml", "scenario catalog file")
	flag.StringVar(&paramsPath, "params", "config/params.yaml", "policy parameters file")
	flag.StringVar(&set, "set", "standard", "scenario set to run (or 'all')")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn, // keep stdout clean for the report
	}))
	slog.SetDefault(logger)

	scenarios, err := config.LoadScenarios(scenariosPath, set)
	if err != nil {
		scenarios = config.DefaultScenarios()
	}

	cfg, err := config.LoadParams(paramsPath)
	if err != nil {
		slog.Error("failed to load params", "error", err)
		os.Exit(1)
	}

	tuned, err := policy.New(cfg)
	if err != nil {
		slog.Error("failed to build policy", "error", err)
		os.Exit(1)
	}

	tunedResults := runner.RunAll(scenarios, tuned, "tuned")
	baselineResults := runner.RunAll(scenarios, policy.Baseline{}, "baseline")

	comparison := metrics.Compare(tunedResults, baselineResults, "Tuned", "Baseline")

	fmt.Println(comparison.ReportA.Format("TUNED POLICY"))
	fmt.Println(comparison.ReportB.Format("BASELINE POLICY"))
	fmt.Println(comparison.Format())
}
