// Package robot provides the robot state model, action catalog, and
// the safety constraint layer.
package robot

import "fmt"

// Task represents the robot's current task mode. It is descriptive only —
// later decisions never branch on it.
type Task uint8

const (
	TaskIdle       Task = iota
	TaskHelping         // actively assisting the user
	TaskNavigating      // moving, e.g. toward the charger
)

// TaskName returns the lowercase task label.
func TaskName(t Task) string {
	switch t {
	case TaskHelping:
		return "helping"
	case TaskNavigating:
		return "navigating"
	default:
		return "idle"
	}
}

// Urgency severity labels, indexed 0 (none) to 3 (critical).
var urgencyLabels = [4]string{"NONE", "LOW", "MEDIUM", "HIGH"}

// UrgencyLabel returns the label for an urgency level, clamping out-of-range
// values into the table.
func UrgencyLabel(u int) string {
	if u < 0 {
		u = 0
	}
	if u > 3 {
		u = 3
	}
	return urgencyLabels[u]
}

// State is the robot's complete world view when making a decision: its
// internal state (battery, current task) plus environmental factors
// (user urgency, distances, time pressure).
//
// Battery lives in [0,100] and Urgency in [0,3]; both are re-clamped by the
// simulation engine after every applied action. The distances are fixed at
// scenario creation and read-only during a run.
type State struct {
	Battery           int     `json:"battery"`      // 0-100 percent
	Urgency           int     `json:"urgency"`      // 0 (none) to 3 (critical)
	Task              Task    `json:"task"`         // set by the last-applied action
	DistanceToUser    float64 `json:"distance_to_user"`    // meters
	DistanceToCharger float64 `json:"distance_to_charger"` // meters
	TimePressure      bool    `json:"time_pressure"`
	TimeStep          int     `json:"time_step"`
}

// NewState creates a State with the default distances and no time pressure.
func NewState(battery, urgency int) State {
	return State{
		Battery:           battery,
		Urgency:           urgency,
		Task:              TaskIdle,
		DistanceToUser:    5.0,
		DistanceToCharger: 10.0,
	}
}

// String renders a human-readable state line for logs and history entries.
func (s State) String() string {
	return fmt.Sprintf("[Step %d] Battery=%d%%, Task=%s, Urgency=%s, Distance to user=%.1fm",
		s.TimeStep, s.Battery, TaskName(s.Task), UrgencyLabel(s.Urgency), s.DistanceToUser)
}

// BatteryCritical reports whether battery is below the 20% critical threshold.
func (s State) BatteryCritical() bool {
	return s.Battery < 20
}

// BatteryDepleted reports whether the battery is empty — the failure condition.
func (s State) BatteryDepleted() bool {
	return s.Battery <= 0
}

// UrgentUser reports whether the user needs immediate help (urgency >= 2).
func (s State) UrgentUser() bool {
	return s.Urgency >= 2
}

// CanHelpSafely combines the quick safety checks: battery above 30% and
// not depleted.
func (s State) CanHelpSafely() bool {
	return s.Battery > 30 && !s.BatteryDepleted()
}
