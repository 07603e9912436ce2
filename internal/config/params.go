package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/carebot/internal/policy"
)

// Params is the params.yaml document: the scoring weight triples threaded
// into the policy constructor. Absent fields keep their defaults.
type Params struct {
	Scoring policy.Config `yaml:"scoring"`
}

// LoadParams reads policy parameters, starting from the defaults and
// overlaying whatever the file defines. A missing file is not an error —
// the defaults are the contract; the file is a tuning knob.
func LoadParams(path string) (policy.Config, error) {
	params := Params{Scoring: policy.DefaultConfig()}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("params file missing, using defaults", "path", path)
			return params.Scoring, nil
		}
		return policy.Config{}, fmt.Errorf("read params: %w", err)
	}

	if err := yaml.Unmarshal(b, &params); err != nil {
		return policy.Config{}, fmt.Errorf("parse params: %w", err)
	}
	return params.Scoring, nil
}
