package policy

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/talgya/carebot/internal/robot"
)

// RuleEnv wraps the robot state and exposes helper methods callable from
// rule condition expressions.
type RuleEnv struct {
	State robot.State
}

func (e RuleEnv) Battery() int        { return e.State.Battery }
func (e RuleEnv) Urgency() int        { return e.State.Urgency }
func (e RuleEnv) TimePressure() bool  { return e.State.TimePressure }
func (e RuleEnv) BatteryCritical() bool { return e.State.BatteryCritical() }
func (e RuleEnv) UrgentUser() bool    { return e.State.UrgentUser() }

// Rule is one strategic override: a condition → action pair. Rules are
// evaluated in descending priority; the first rule whose condition holds
// and whose action passes the constraint layer decides the tick outright,
// bypassing the scorer.
type Rule struct {
	Name         string       // human-readable identifier
	Priority     int          // higher = evaluated first
	ConditionSrc string       // expr source (preserved for introspection)
	program      *vm.Program  // compiled bytecode
	Action       robot.Action // what fires when the condition holds
}

// DefaultRules returns the strategic rule chain for extreme situations.
// The bands encode the robot's values: a critical user outranks battery
// worries, battery below 10% is emergency territory, and the 10-25% band
// allows one more help before a mandatory recharge.
func DefaultRules() []*Rule {
	return []*Rule{
		{
			Name:         "critical-urgency-help",
			Priority:     100,
			ConditionSrc: `Urgency() >= 3 && Battery() >= 10`,
			Action:       robot.ActionHelpUser,
		},
		{
			Name:         "critical-urgency-handoff",
			Priority:     90,
			ConditionSrc: `Urgency() >= 3`,
			Action:       robot.ActionCallForHelp,
		},
		{
			Name:         "emergency-battery-handoff",
			Priority:     80,
			ConditionSrc: `Battery() < 10 && Urgency() >= 2`,
			Action:       robot.ActionCallForHelp,
		},
		{
			Name:         "emergency-battery-recharge",
			Priority:     70,
			ConditionSrc: `Battery() < 10`,
			Action:       robot.ActionRecharge,
		},
		{
			Name:         "low-band-last-help",
			Priority:     60,
			ConditionSrc: `Battery() < 25 && Urgency() >= 2`,
			Action:       robot.ActionHelpUser,
		},
		{
			Name:         "low-band-recharge",
			Priority:     50,
			ConditionSrc: `Battery() < 25`,
			Action:       robot.ActionRecharge,
		},
		{
			Name:         "urgent-help",
			Priority:     40,
			ConditionSrc: `Urgency() >= 2 && Battery() >= 25`,
			Action:       robot.ActionHelpUser,
		},
		{
			Name:         "mid-band-help-first",
			Priority:     30,
			ConditionSrc: `Battery() >= 25 && Battery() < 45 && Urgency() >= 1`,
			Action:       robot.ActionHelpUser,
		},
		{
			Name:         "proactive-recharge",
			Priority:     20,
			ConditionSrc: `Battery() < 45 && Urgency() <= 1`,
			Action:       robot.ActionRecharge,
		},
		{
			Name:         "comfortable-help",
			Priority:     10,
			ConditionSrc: `Urgency() >= 1 && Battery() >= 45`,
			Action:       robot.ActionHelpUser,
		},
	}
}

// compileRules compiles every condition to expr bytecode and sorts the set
// by descending priority. A condition that fails to compile aborts policy
// construction — rules are static, so that is a programming error.
func compileRules(rules []*Rule) ([]*Rule, error) {
	compiled := make([]*Rule, len(rules))
	for i, r := range rules {
		program, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		rc := *r
		rc.program = program
		compiled[i] = &rc
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})
	return compiled, nil
}

// evalRules runs the chain against a state. The returned bool reports
// whether any rule fired. A rule only fires when its action is in the
// allowed set, so the fast path can never pick a blocked action.
func evalRules(rules []*Rule, s robot.State, allowed map[robot.Action]bool) (robot.Action, bool) {
	env := RuleEnv{State: s}
	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			// Compiled with AsBool against a static env; should not happen.
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}
		if !allowed[r.Action] {
			continue
		}
		return r.Action, true
	}
	return 0, false
}
