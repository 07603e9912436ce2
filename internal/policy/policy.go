// Package policy implements the action-evaluation layer: a strategic rule
// chain for recognized critical situations with a weighted multi-dimensional
// scorer as the fallback.
package policy

import (
	"fmt"
	"math"

	"github.com/talgya/carebot/internal/robot"
)

// Policy selects one action per tick. It is stateless across calls: every
// decision is a pure function of the state passed in. Construct once per
// strategy and reuse freely.
type Policy struct {
	rules []*Rule
	cfg   Config
}

// New compiles the default strategic rules under the given scoring config.
func New(cfg Config) (*Policy, error) {
	return NewWithRules(cfg, DefaultRules())
}

// NewWithRules compiles a custom rule chain. Compilation failures are
// programming errors in the rule set, reported at construction so
// ChooseAction itself never fails.
func NewWithRules(cfg Config, rules []*Rule) (*Policy, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, fmt.Errorf("compile policy rules: %w", err)
	}
	return &Policy{rules: compiled, cfg: cfg}, nil
}

// ChooseAction picks the action for the current state:
//
//  1. Filter to actions passing the constraint layer; if nothing is
//     allowed, fall back to CALL_FOR_HELP.
//  2. Run the strategic rule chain; the first firing rule wins outright.
//  3. Otherwise score every allowed action and return the best, preferring
//     HELP_USER on ties.
func (p *Policy) ChooseAction(s robot.State) robot.Action {
	allowed := allowedSet(s)
	if len(allowed) == 0 {
		return robot.ActionCallForHelp
	}

	if a, ok := evalRules(p.rules, s, allowed); ok {
		return a
	}

	return p.chooseByScore(s, allowed)
}

// chooseByScore returns the highest-scoring allowed action.
func (p *Policy) chooseByScore(s robot.State, allowed map[robot.Action]bool) robot.Action {
	best := robot.ActionCallForHelp
	bestScore := math.Inf(-1)

	for _, a := range robot.Actions {
		if !allowed[a] {
			continue
		}
		score := ScoreAction(a, s, p.cfg)

		// Tiebreaker: prefer helping over everything else.
		if score == bestScore && a == robot.ActionHelpUser {
			best = a
		}
		if score > bestScore {
			bestScore = score
			best = a
		}
	}

	return best
}

// EvaluateOptions scores every action for introspection by external
// displays. Blocked actions are marked -Inf.
func (p *Policy) EvaluateOptions(s robot.State) map[robot.Action]float64 {
	scores := make(map[robot.Action]float64, len(robot.Actions))
	for _, a := range robot.Actions {
		if ok, _ := robot.IsActionAllowed(a, s); ok {
			scores[a] = ScoreAction(a, s, p.cfg)
		} else {
			scores[a] = math.Inf(-1)
		}
	}
	return scores
}

func allowedSet(s robot.State) map[robot.Action]bool {
	allowed := make(map[robot.Action]bool, len(robot.Actions))
	for _, a := range robot.AllowedActions(s) {
		allowed[a] = true
	}
	return allowed
}
