// Package runner drives one scenario from its initial state to a terminal
// condition or the step budget, wiring a decision policy to the simulator.
package runner

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/carebot/internal/engine"
	"github.com/talgya/carebot/internal/robot"
)

// Chooser is any decision strategy the runner can drive.
type Chooser interface {
	ChooseAction(robot.State) robot.Action
}

// Scenario is one bounded run: a name, a fixed initial state, and a step
// budget.
type Scenario struct {
	Name     string
	Initial  robot.State
	MaxSteps int
}

// Result captures everything the metrics layer needs about one run.
type Result struct {
	Name            string    `json:"name"`
	RunID           uuid.UUID `json:"run_id"`
	Strategy        string    `json:"strategy"`
	InitialBattery  int       `json:"initial_battery"`
	InitialUrgency  int       `json:"initial_urgency"`
	Steps           int       `json:"steps"`
	FinalBattery    int       `json:"final_battery"`
	FinalUrgency    int       `json:"final_urgency"`
	UserHelped      bool      `json:"user_helped"`
	BatteryDepleted bool      `json:"battery_depleted"`
	Substitutions   int       `json:"substitutions"` // blocked choices replaced by CALL_FOR_HELP
	History         []engine.HistoryEntry `json:"-"`
}

// Run executes a scenario with the given strategy. A choice the constraint
// layer blocks is not an error: the runner substitutes CALL_FOR_HELP, the
// fail-safe default. The loop polls the two caller-side terminal
// conditions — user helped (urgency 0) and battery depleted — after every
// applied action.
func Run(sc Scenario, c Chooser, strategy string) Result {
	sim := engine.New(sc.Initial, sc.MaxSteps)
	substitutions := 0

	for step := 0; !sim.Ended && step < sc.MaxSteps; step++ {
		chosen := c.ChooseAction(sim.State)

		if allowed, reason := robot.IsActionAllowed(chosen, sim.State); !allowed {
			slog.Warn("chosen action blocked, substituting handoff",
				"run", sim.RunID,
				"scenario", sc.Name,
				"action", chosen,
				"reason", reason,
			)
			chosen = robot.ActionCallForHelp
			substitutions++
		}

		for _, w := range robot.ConstraintWarnings(chosen, sim.State) {
			slog.Debug("constraint warning",
				"run", sim.RunID,
				"scenario", sc.Name,
				"action", chosen,
				"warning", w,
			)
		}

		sim.ApplyAction(chosen)

		if sim.State.Urgency == 0 {
			break // user helped
		}
		if sim.State.BatteryDepleted() {
			break // failure
		}
	}

	summary := sim.Summary()
	return Result{
		Name:            sc.Name,
		RunID:           sim.RunID,
		Strategy:        strategy,
		InitialBattery:  sc.Initial.Battery,
		InitialUrgency:  sc.Initial.Urgency,
		Steps:           summary.TotalSteps,
		FinalBattery:    summary.FinalBattery,
		FinalUrgency:    summary.FinalUrgency,
		UserHelped:      summary.UserHelped,
		BatteryDepleted: summary.BatteryDepleted,
		Substitutions:   substitutions,
		History:         sim.History,
	}
}

// RunAll executes every scenario in order with the same strategy.
func RunAll(scenarios []Scenario, c Chooser, strategy string) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		res := Run(sc, c, strategy)
		slog.Info("scenario finished",
			"scenario", res.Name,
			"strategy", strategy,
			"steps", res.Steps,
			"final_battery", res.FinalBattery,
			"user_helped", res.UserHelped,
			"battery_depleted", res.BatteryDepleted,
		)
		results = append(results, res)
	}
	return results
}
