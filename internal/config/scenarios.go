// Package config loads scenario catalogs and tunable policy parameters
// from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/carebot/internal/robot"
	"github.com/talgya/carebot/internal/runner"
)

// ScenarioSpec is one scenario entry as written in scenarios.yaml.
type ScenarioSpec struct {
	Name              string  `yaml:"name"`
	Battery           int     `yaml:"battery"`
	UserUrgency       int     `yaml:"user_urgency"`
	DistanceToUser    float64 `yaml:"distance_to_user"`
	DistanceToCharger float64 `yaml:"distance_to_charger"`
	TimePressure      bool    `yaml:"time_pressure"`
	MaxSteps          int     `yaml:"max_steps"`
}

// ScenarioFile is the scenarios.yaml document: a flat catalog plus named
// subsets.
type ScenarioFile struct {
	Scenarios    []ScenarioSpec      `yaml:"scenarios"`
	ScenarioSets map[string][]string `yaml:"scenario_sets"`
}

func (s ScenarioSpec) toScenario() runner.Scenario {
	state := robot.NewState(s.Battery, s.UserUrgency)
	if s.DistanceToUser > 0 {
		state.DistanceToUser = s.DistanceToUser
	}
	if s.DistanceToCharger > 0 {
		state.DistanceToCharger = s.DistanceToCharger
	}
	state.TimePressure = s.TimePressure
	return runner.Scenario{Name: s.Name, Initial: state, MaxSteps: s.MaxSteps}
}

// LoadScenarios reads a scenario catalog and returns the scenarios of the
// named set, in file order. The set "all" (or an unknown set name with no
// sets defined) selects the whole catalog.
func LoadScenarios(path, set string) ([]runner.Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenarios file %s defines no scenarios", path)
	}

	selected := make(map[string]bool)
	if set != "all" {
		names, ok := file.ScenarioSets[set]
		if !ok {
			return nil, fmt.Errorf("unknown scenario set %q", set)
		}
		for _, n := range names {
			selected[n] = true
		}
	}

	var scenarios []runner.Scenario
	for _, spec := range file.Scenarios {
		if set != "all" && !selected[spec.Name] {
			continue
		}
		scenarios = append(scenarios, spec.toScenario())
	}
	return scenarios, nil
}

// ScenarioByName returns a single scenario from the catalog.
func ScenarioByName(path, name string) (runner.Scenario, error) {
	scenarios, err := LoadScenarios(path, "all")
	if err != nil {
		return runner.Scenario{}, err
	}
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return runner.Scenario{}, fmt.Errorf("scenario %q not found", name)
}

// DefaultScenarios is the built-in standard catalog, used when no
// scenarios file is supplied.
func DefaultScenarios() []runner.Scenario {
	specs := []ScenarioSpec{
		{Name: "Easy Start", Battery: 80, UserUrgency: 1, MaxSteps: 8},
		{Name: "Urgent Need", Battery: 70, UserUrgency: 2, MaxSteps: 8},
		{Name: "Critical Emergency", Battery: 80, UserUrgency: 3, MaxSteps: 8},
		{Name: "Low Battery", Battery: 25, UserUrgency: 1, MaxSteps: 10},
		{Name: "Low Battery Crisis", Battery: 20, UserUrgency: 3, MaxSteps: 10},
		{Name: "Nearly Depleted", Battery: 5, UserUrgency: 0, MaxSteps: 6},
		{Name: "Battery vs Urgency", Battery: 15, UserUrgency: 2, MaxSteps: 10},
		{Name: "Already Charged", Battery: 95, UserUrgency: 0, MaxSteps: 6},
		{Name: "Balanced Start", Battery: 50, UserUrgency: 1, MaxSteps: 8},
		{Name: "Long Haul", Battery: 60, UserUrgency: 2, MaxSteps: 15},
		{Name: "Time Pressure", Battery: 40, UserUrgency: 2, TimePressure: true, MaxSteps: 5},
		{Name: "Quiet Watch", Battery: 55, UserUrgency: 0, MaxSteps: 8},
	}
	scenarios := make([]runner.Scenario, len(specs))
	for i, spec := range specs {
		scenarios[i] = spec.toScenario()
	}
	return scenarios
}
