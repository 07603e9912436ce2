package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionCatalog(t *testing.T) {
	help := SpecFor(ActionHelpUser)
	assert.Equal(t, 15, help.BatteryCost)
	assert.Equal(t, 1, help.TimeCost)
	assert.Equal(t, 1, help.UrgencyReduction)
	assert.Equal(t, 10, help.MinBattery)
	assert.False(t, help.EndsScenario)

	recharge := SpecFor(ActionRecharge)
	assert.Equal(t, 50, recharge.BatteryGain)
	assert.Equal(t, 2, recharge.TimeCost)
	assert.False(t, recharge.UrgencyRisk)

	wait := SpecFor(ActionWait)
	assert.Equal(t, 2, wait.BatteryCost)
	assert.True(t, wait.UrgencyRisk)

	call := SpecFor(ActionCallForHelp)
	assert.Equal(t, 5, call.BatteryCost)
	assert.True(t, call.EndsScenario)
}

func TestNetBatteryCost(t *testing.T) {
	assert.Equal(t, 15, NetBatteryCost(ActionHelpUser))
	assert.Equal(t, -50, NetBatteryCost(ActionRecharge), "recharge is a gain")
	assert.Equal(t, 2, NetBatteryCost(ActionWait))
	assert.Equal(t, 5, NetBatteryCost(ActionCallForHelp))
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "HELP_USER", ActionHelpUser.String())
	assert.Equal(t, "RECHARGE", ActionRecharge.String())
	assert.Equal(t, "WAIT", ActionWait.String())
	assert.Equal(t, "CALL_FOR_HELP", ActionCallForHelp.String())
}

func TestStateString(t *testing.T) {
	s := NewState(50, 1)
	s.TimeStep = 3
	assert.Equal(t, "[Step 3] Battery=50%, Task=idle, Urgency=LOW, Distance to user=5.0m", s.String())
}

func TestStatePredicates(t *testing.T) {
	assert.True(t, NewState(19, 0).BatteryCritical())
	assert.False(t, NewState(20, 0).BatteryCritical())
	assert.True(t, NewState(0, 0).BatteryDepleted())
	assert.False(t, NewState(1, 0).BatteryDepleted())
	assert.True(t, NewState(50, 2).UrgentUser())
	assert.False(t, NewState(50, 1).UrgentUser())
	assert.True(t, NewState(31, 0).CanHelpSafely())
	assert.False(t, NewState(30, 0).CanHelpSafely())
}
