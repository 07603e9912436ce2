// Package engine provides the deterministic scenario simulator: it applies
// action effects to the robot state, advances time, clamps values, and
// detects terminal conditions.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/carebot/internal/robot"
)

// HistoryEntry is one append-only log record of an applied action.
type HistoryEntry struct {
	Step    int          `json:"step"`
	Action  robot.Action `json:"action"`
	State   string       `json:"state"`
	Message string       `json:"message"`
}

// Summary aggregates the outcome of a finished (or in-flight) run.
type Summary struct {
	TotalSteps      int  `json:"total_steps"`
	FinalBattery    int  `json:"final_battery"`
	FinalUrgency    int  `json:"final_urgency"`
	UserHelped      bool `json:"user_helped"`
	BatteryDepleted bool `json:"battery_depleted"`
}

// Simulator owns one scenario run: a single mutable State stepped in place
// by ApplyAction until the scenario ends or the step budget runs out.
// A Simulator is not shared across runs — each run gets its own.
type Simulator struct {
	RunID    uuid.UUID
	State    robot.State
	MaxSteps int
	History  []HistoryEntry
	Ended    bool
}

// New creates a Simulator for one scenario run.
func New(initial robot.State, maxSteps int) *Simulator {
	return &Simulator{
		RunID:    uuid.New(),
		State:    initial,
		MaxSteps: maxSteps,
	}
}

// ApplyAction executes one action: applies its effect, advances the step
// counter by the action's time cost, clamps battery and urgency back into
// their domains, and flags the run as ended when the action is terminal or
// the step budget is reached.
//
// The two caller-side terminal conditions — urgency reaching 0 and battery
// depletion — are deliberately not checked here; the driving loop polls
// them between steps.
func (sim *Simulator) ApplyAction(a robot.Action) robot.Outcome {
	spec := robot.SpecFor(a)

	var out robot.Outcome
	switch a {
	case robot.ActionHelpUser:
		out = sim.applyHelpUser(spec)
	case robot.ActionRecharge:
		out = sim.applyRecharge(spec)
	case robot.ActionWait:
		out = sim.applyWait(spec)
	case robot.ActionCallForHelp:
		out = sim.applyCallForHelp(spec)
	}

	sim.State.TimeStep += spec.TimeCost

	// Clamp back into domain; intermediate out-of-range values are allowed.
	if sim.State.Battery < 0 {
		sim.State.Battery = 0
	}
	if sim.State.Battery > 100 {
		sim.State.Battery = 100
	}
	if sim.State.Urgency < 0 {
		sim.State.Urgency = 0
	}
	if sim.State.Urgency > 3 {
		sim.State.Urgency = 3
	}

	if spec.EndsScenario {
		sim.Ended = true
	}
	if sim.State.TimeStep >= sim.MaxSteps {
		sim.Ended = true
		out.Message += " [TIME LIMIT REACHED]"
	}

	sim.History = append(sim.History, HistoryEntry{
		Step:    sim.State.TimeStep,
		Action:  a,
		State:   sim.State.String(),
		Message: out.Message,
	})

	slog.Debug("action applied",
		"run", sim.RunID,
		"action", a,
		"step", sim.State.TimeStep,
		"battery", sim.State.Battery,
		"urgency", sim.State.Urgency,
		"ended", sim.Ended,
	)

	return out
}

func (sim *Simulator) applyHelpUser(spec robot.Spec) robot.Outcome {
	sim.State.Battery -= spec.BatteryCost

	oldUrgency := sim.State.Urgency
	sim.State.Urgency -= spec.UrgencyReduction
	if sim.State.Urgency < 0 {
		sim.State.Urgency = 0
	}
	sim.State.Task = robot.TaskHelping

	var msg string
	if sim.State.Urgency == 0 {
		msg = fmt.Sprintf("Helped user successfully! (urgency %d->0)", oldUrgency)
	} else {
		msg = fmt.Sprintf("Helped user (urgency %d->%d)", oldUrgency, sim.State.Urgency)
	}

	return robot.Outcome{
		Success:      true,
		Message:      msg,
		BatteryDelta: -spec.BatteryCost,
		UrgencyDelta: -spec.UrgencyReduction,
		TaskChange:   robot.TaskHelping,
	}
}

func (sim *Simulator) applyRecharge(spec robot.Spec) robot.Outcome {
	oldBattery := sim.State.Battery
	sim.State.Battery += spec.BatteryGain
	sim.State.Task = robot.TaskNavigating

	// Urgency is untouched — the deterministic variant.
	newBattery := sim.State.Battery
	if newBattery > 100 {
		newBattery = 100
	}
	return robot.Outcome{
		Success:      true,
		Message:      fmt.Sprintf("Recharged battery (%d->%d%%)", oldBattery, newBattery),
		BatteryDelta: spec.BatteryGain,
		TaskChange:   robot.TaskNavigating,
	}
}

func (sim *Simulator) applyWait(spec robot.Spec) robot.Outcome {
	sim.State.Battery -= spec.BatteryCost
	sim.State.Task = robot.TaskIdle

	// Waiting always risks escalation: below the cap, urgency rises by one.
	msg := "Waited and observed"
	if sim.State.Urgency < 3 {
		sim.State.Urgency++
		msg += fmt.Sprintf(" [User urgency increased to %d!]", sim.State.Urgency)
	}

	return robot.Outcome{
		Success:      true,
		Message:      msg,
		BatteryDelta: -spec.BatteryCost,
		TaskChange:   robot.TaskIdle,
	}
}

func (sim *Simulator) applyCallForHelp(spec robot.Spec) robot.Outcome {
	sim.State.Battery -= spec.BatteryCost
	sim.State.Task = robot.TaskIdle

	return robot.Outcome{
		Success:      true,
		Message:      "Called for human assistance (scenario ended)",
		BatteryDelta: -spec.BatteryCost,
		TaskChange:   robot.TaskIdle,
	}
}

// Summary reports the run's aggregate results.
func (sim *Simulator) Summary() Summary {
	return Summary{
		TotalSteps:      sim.State.TimeStep,
		FinalBattery:    sim.State.Battery,
		FinalUrgency:    sim.State.Urgency,
		UserHelped:      sim.State.Urgency == 0,
		BatteryDepleted: sim.State.BatteryDepleted(),
	}
}
