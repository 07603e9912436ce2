package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/carebot/internal/policy"
)

const scenariosYAML = `scenarios:
  - name: "Morning Call"
    battery: 70
    user_urgency: 2
    distance_to_user: 3.5
    max_steps: 8
  - name: "Night Shift"
    battery: 30
    user_urgency: 1
    time_pressure: true
    max_steps: 10

scenario_sets:
  smoke:
    - "Morning Call"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenariosAll(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenariosYAML)

	scenarios, err := LoadScenarios(path, "all")
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	first := scenarios[0]
	assert.Equal(t, "Morning Call", first.Name)
	assert.Equal(t, 70, first.Initial.Battery)
	assert.Equal(t, 2, first.Initial.Urgency)
	assert.InDelta(t, 3.5, first.Initial.DistanceToUser, 1e-9)
	assert.InDelta(t, 10.0, first.Initial.DistanceToCharger, 1e-9, "unset distance keeps the default")
	assert.Equal(t, 8, first.MaxSteps)

	assert.True(t, scenarios[1].Initial.TimePressure)
}

func TestLoadScenariosNamedSet(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenariosYAML)

	scenarios, err := LoadScenarios(path, "smoke")
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "Morning Call", scenarios[0].Name)
}

func TestLoadScenariosUnknownSet(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenariosYAML)

	_, err := LoadScenarios(path, "nope")
	assert.ErrorContains(t, err, `unknown scenario set "nope"`)
}

func TestLoadScenariosEmptyCatalog(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", "scenarios: []\n")

	_, err := LoadScenarios(path, "all")
	assert.ErrorContains(t, err, "defines no scenarios")
}

func TestLoadScenariosMissingFile(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.yaml"), "all")
	assert.Error(t, err)
}

func TestScenarioByName(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenariosYAML)

	sc, err := ScenarioByName(path, "Night Shift")
	require.NoError(t, err)
	assert.Equal(t, 30, sc.Initial.Battery)

	_, err = ScenarioByName(path, "No Such")
	assert.ErrorContains(t, err, "not found")
}

func TestDefaultScenariosCatalog(t *testing.T) {
	scenarios := DefaultScenarios()
	require.Len(t, scenarios, 12)

	seen := make(map[string]bool)
	for _, sc := range scenarios {
		assert.False(t, seen[sc.Name], "duplicate scenario name %q", sc.Name)
		seen[sc.Name] = true
		assert.Positive(t, sc.MaxSteps)
		assert.GreaterOrEqual(t, sc.Initial.Battery, 0)
		assert.LessOrEqual(t, sc.Initial.Battery, 100)
	}
	assert.True(t, seen["Critical Emergency"])
	assert.True(t, seen["Nearly Depleted"])
}

func TestLoadParamsMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, policy.DefaultConfig(), cfg)
}

func TestLoadParamsOverlay(t *testing.T) {
	path := writeFile(t, "params.yaml", `scoring:
  critical_urgency:
    safety: 0.10
    helpfulness: 0.80
    efficiency: 0.10
  high_urgency:
    safety: 0.25
    helpfulness: 0.60
    efficiency: 0.15
  critical_battery:
    safety: 0.70
    helpfulness: 0.20
    efficiency: 0.10
  low_battery:
    safety: 0.55
    helpfulness: 0.30
    efficiency: 0.15
  balanced:
    safety: 0.25
    helpfulness: 0.55
    efficiency: 0.20
`)

	cfg, err := LoadParams(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.80, cfg.CriticalUrgency.Helpfulness, 1e-9)
	assert.InDelta(t, 0.25, cfg.HighUrgency.Safety, 1e-9)
}

func TestLoadParamsRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "params.yaml", "scoring: [not, a, map]\n")

	_, err := LoadParams(path)
	assert.Error(t, err)
}
