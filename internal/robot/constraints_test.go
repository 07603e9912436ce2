package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActionAllowed(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		state   State
		allowed bool
		reason  string
	}{
		{
			name:    "help blocked when depleted",
			action:  ActionHelpUser,
			state:   NewState(0, 2),
			allowed: false,
			reason:  "Cannot help user: battery depleted",
		},
		{
			name:    "help blocked below minimum battery",
			action:  ActionHelpUser,
			state:   NewState(9, 2),
			allowed: false,
			reason:  "Cannot help user: battery too low (need 10%)",
		},
		{
			name:    "help allowed at minimum battery",
			action:  ActionHelpUser,
			state:   NewState(10, 2),
			allowed: true,
		},
		{
			name:    "wait blocked when critical and help affordable",
			action:  ActionWait,
			state:   NewState(15, 3),
			allowed: false,
			reason:  "Cannot wait: user urgency is critical and we can help",
		},
		{
			name:    "wait allowed when critical but help unaffordable",
			action:  ActionWait,
			state:   NewState(14, 3),
			allowed: true,
		},
		{
			name:    "recharge blocked when effectively full",
			action:  ActionRecharge,
			state:   NewState(95, 0),
			allowed: false,
			reason:  "Already fully charged",
		},
		{
			name:    "recharge allowed just under the cap",
			action:  ActionRecharge,
			state:   NewState(94, 0),
			allowed: true,
		},
		{
			name:    "call for help always allowed",
			action:  ActionCallForHelp,
			state:   NewState(0, 3),
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, reason := IsActionAllowed(tt.action, tt.state)
			assert.Equal(t, tt.allowed, allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, reason)
			}
		})
	}
}

func TestConstraintWarnings(t *testing.T) {
	warnings := ConstraintWarnings(ActionHelpUser, NewState(15, 1))
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "critically low battery")

	warnings = ConstraintWarnings(ActionRecharge, NewState(50, 2))
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Recharging while user needs urgent help")

	warnings = ConstraintWarnings(ActionWait, NewState(50, 2))
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Waiting while user urgency is high")

	assert.Empty(t, ConstraintWarnings(ActionHelpUser, NewState(80, 1)))
	assert.Empty(t, ConstraintWarnings(ActionCallForHelp, NewState(10, 3)))
}

// Constraint queries are pure: repeated calls with the same inputs must
// agree, and they must not touch the state.
func TestConstraintQueriesAreIdempotent(t *testing.T) {
	s := NewState(15, 3)

	a1, r1 := IsActionAllowed(ActionWait, s)
	a2, r2 := IsActionAllowed(ActionWait, s)
	assert.Equal(t, a1, a2)
	assert.Equal(t, r1, r2)

	w1 := ConstraintWarnings(ActionRecharge, s)
	w2 := ConstraintWarnings(ActionRecharge, s)
	assert.Equal(t, w1, w2)

	assert.Equal(t, NewState(15, 3), s)
}

func TestAllowedActions(t *testing.T) {
	// battery 95, urgency 0: only recharge is blocked.
	allowed := AllowedActions(NewState(95, 0))
	assert.Equal(t, []Action{ActionHelpUser, ActionWait, ActionCallForHelp}, allowed)

	// battery 5, urgency 0: helping is blocked.
	allowed = AllowedActions(NewState(5, 0))
	assert.Equal(t, []Action{ActionRecharge, ActionWait, ActionCallForHelp}, allowed)
}
