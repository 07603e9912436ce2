package policy

import (
	"math"

	"github.com/talgya/carebot/internal/robot"
)

// Baseline is the naive comparison strategy: no strategic rules, a single
// flat score per action, and no battery-safety awareness beyond the hard
// constraints. It exists as the opponent for head-to-head comparisons.
type Baseline struct{}

// ChooseAction filters to allowed actions and picks the best naive score.
func (Baseline) ChooseAction(s robot.State) robot.Action {
	allowed := robot.AllowedActions(s)
	if len(allowed) == 0 {
		return robot.ActionCallForHelp
	}

	best := allowed[0]
	bestScore := math.Inf(-1)
	for _, a := range allowed {
		score := baselineScore(a, s)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

// EvaluateOptions mirrors Policy.EvaluateOptions for the naive scorer.
func (Baseline) EvaluateOptions(s robot.State) map[robot.Action]float64 {
	scores := make(map[robot.Action]float64, len(robot.Actions))
	for _, a := range robot.Actions {
		if ok, _ := robot.IsActionAllowed(a, s); ok {
			scores[a] = baselineScore(a, s)
		} else {
			scores[a] = math.Inf(-1)
		}
	}
	return scores
}

// baselineScore is deliberately simplistic: help whenever there is any
// urgency, recharge only when nearly empty, never call for help.
func baselineScore(a robot.Action, s robot.State) float64 {
	switch a {
	case robot.ActionHelpUser:
		if s.Urgency > 0 {
			return 50
		}
		return 10
	case robot.ActionRecharge:
		if s.Battery < 15 {
			return 60
		}
		return 0
	case robot.ActionWait:
		return 20
	default: // CALL_FOR_HELP
		return -100
	}
}
