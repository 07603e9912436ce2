package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/carebot/internal/robot"
)

func TestDefaultRulesCompile(t *testing.T) {
	compiled, err := compileRules(DefaultRules())
	require.NoError(t, err)
	assert.Len(t, compiled, 10)

	// Descending priority after compilation.
	for i := 1; i < len(compiled); i++ {
		assert.GreaterOrEqual(t, compiled[i-1].Priority, compiled[i].Priority,
			"rules not sorted by priority: %s before %s", compiled[i-1].Name, compiled[i].Name)
	}
}

func TestRuleChainFiring(t *testing.T) {
	compiled, err := compileRules(DefaultRules())
	require.NoError(t, err)

	tests := []struct {
		name   string
		state  robot.State
		want   robot.Action
		fired  bool
	}{
		{
			name:  "critical urgency with battery prefers help",
			state: robot.NewState(80, 3),
			want:  robot.ActionHelpUser,
			fired: true,
		},
		{
			name:  "critical urgency at minimum battery still helps",
			state: robot.NewState(10, 3),
			want:  robot.ActionHelpUser,
			fired: true,
		},
		{
			name:  "critical urgency without battery hands off",
			state: robot.NewState(8, 3),
			want:  robot.ActionCallForHelp,
			fired: true,
		},
		{
			name:  "emergency battery with urgent user hands off",
			state: robot.NewState(5, 2),
			want:  robot.ActionCallForHelp,
			fired: true,
		},
		{
			name:  "emergency battery without urgency recharges",
			state: robot.NewState(5, 0),
			want:  robot.ActionRecharge,
			fired: true,
		},
		{
			name:  "low band with urgency allows one more help",
			state: robot.NewState(20, 2),
			want:  robot.ActionHelpUser,
			fired: true,
		},
		{
			name:  "low band without urgency recharges",
			state: robot.NewState(20, 1),
			want:  robot.ActionRecharge,
			fired: true,
		},
		{
			name:  "urgent user with good battery helps",
			state: robot.NewState(60, 2),
			want:  robot.ActionHelpUser,
			fired: true,
		},
		{
			name:  "mid band with low urgency helps first",
			state: robot.NewState(30, 1),
			want:  robot.ActionHelpUser,
			fired: true,
		},
		{
			name:  "comfortable battery with low urgency helps",
			state: robot.NewState(50, 1),
			want:  robot.ActionHelpUser,
			fired: true,
		},
		{
			name:  "no urgency with good battery falls through to scoring",
			state: robot.NewState(80, 0),
			fired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed := allowedSet(tt.state)
			got, fired := evalRules(compiled, tt.state, allowed)
			assert.Equal(t, tt.fired, fired)
			if tt.fired {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// A rule whose action the constraint layer blocks must not fire.
func TestRuleSkippedWhenActionBlocked(t *testing.T) {
	rules := []*Rule{{
		Name:         "always-help",
		Priority:     1,
		ConditionSrc: `Battery() >= 0`,
		Action:       robot.ActionHelpUser,
	}}
	compiled, err := compileRules(rules)
	require.NoError(t, err)

	s := robot.NewState(5, 1) // helping blocked below 10%
	_, fired := evalRules(compiled, s, allowedSet(s))
	assert.False(t, fired)
}

func TestCompileRejectsBadCondition(t *testing.T) {
	_, err := compileRules([]*Rule{{
		Name:         "broken",
		ConditionSrc: `Battery() >=`,
		Action:       robot.ActionWait,
	}})
	assert.Error(t, err)
}
