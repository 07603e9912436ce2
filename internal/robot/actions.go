package robot

// Action enumerates what the robot can do on a tick.
type Action uint8

const (
	ActionHelpUser    Action = iota // assist the user: costs battery, reduces urgency
	ActionRecharge                  // go to the charger: gains battery, takes longer
	ActionWait                      // observe: small cost, urgency risk
	ActionCallForHelp               // hand off to a human: ends the scenario
)

// Actions lists every action in catalog order.
var Actions = [4]Action{ActionHelpUser, ActionRecharge, ActionWait, ActionCallForHelp}

// String returns the uppercase action name.
func (a Action) String() string {
	switch a {
	case ActionHelpUser:
		return "HELP_USER"
	case ActionRecharge:
		return "RECHARGE"
	case ActionWait:
		return "WAIT"
	case ActionCallForHelp:
		return "CALL_FOR_HELP"
	default:
		return "UNKNOWN"
	}
}

// Spec holds the static properties of one action kind: costs, benefits,
// and prerequisites. The catalog below is process-wide read-only
// configuration — never mutated at runtime.
type Spec struct {
	BatteryCost      int    // percent drained
	BatteryGain      int    // percent restored
	TimeCost         int    // steps consumed
	UrgencyReduction int    // urgency removed (floored at 0 by the engine)
	UrgencyRisk      bool   // urgency increases while the action runs
	MinBattery       int    // minimum battery to attempt
	EndsScenario     bool   // unconditionally terminal
	Description      string
}

var specs = [4]Spec{
	ActionHelpUser: {
		BatteryCost:      15,
		TimeCost:         1,
		UrgencyReduction: 1,
		MinBattery:       10,
		Description:      "Assist the user with their need",
	},
	ActionRecharge: {
		BatteryGain: 50,
		TimeCost:    2,
		Description: "Go to charging station and recharge",
	},
	ActionWait: {
		BatteryCost: 2,
		TimeCost:    1,
		UrgencyRisk: true,
		Description: "Do nothing, observe situation",
	},
	ActionCallForHelp: {
		BatteryCost:  5,
		TimeCost:     1,
		EndsScenario: true,
		Description:  "Request human assistance (gives up task)",
	},
}

// SpecFor returns the immutable spec for an action.
func SpecFor(a Action) Spec {
	return specs[a]
}

// NetBatteryCost returns the net battery change of an action as a cost:
// positive drains, negative gains (RECHARGE yields -50).
func NetBatteryCost(a Action) int {
	s := specs[a]
	return s.BatteryCost - s.BatteryGain
}

// MinBattery returns the minimum battery level required to attempt an action.
func MinBattery(a Action) int {
	return specs[a].MinBattery
}

// Description returns the human-readable description of an action.
func Description(a Action) string {
	return specs[a].Description
}

// Outcome is the immutable result of one action application.
type Outcome struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	BatteryDelta int    `json:"battery_delta"` // signed: negative = loss
	UrgencyDelta int    `json:"urgency_delta"` // signed
	TaskChange   Task   `json:"task_change"`
}
