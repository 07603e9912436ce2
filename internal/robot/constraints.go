package robot

// The constraint layer holds the hard safety rules that block dangerous or
// nonsensical actions, plus advisory warnings that never alter control flow.
// Both are pure queries: same (action, state) in, same answer out.

// IsActionAllowed checks an action against the hard constraints. When
// blocked, the reason explains the first rule that triggered.
func IsActionAllowed(a Action, s State) (bool, string) {
	// Cannot help with a depleted battery.
	if a == ActionHelpUser && s.BatteryDepleted() {
		return false, "Cannot help user: battery depleted"
	}

	// Cannot help below the minimum battery threshold.
	if a == ActionHelpUser && s.Battery < MinBattery(ActionHelpUser) {
		return false, "Cannot help user: battery too low (need 10%)"
	}

	// Cannot wait when urgency is critical and helping is affordable.
	if a == ActionWait && s.Urgency >= 3 && s.Battery >= 15 {
		return false, "Cannot wait: user urgency is critical and we can help"
	}

	// Cannot recharge when effectively full.
	if a == ActionRecharge && s.Battery >= 95 {
		return false, "Already fully charged"
	}

	return true, "Action allowed"
}

// ConstraintWarnings returns advisory warnings about an action. They are
// logged by drivers but never block anything.
func ConstraintWarnings(a Action, s State) []string {
	var warnings []string

	if a == ActionHelpUser && s.BatteryCritical() {
		warnings = append(warnings, "WARNING: Helping with critically low battery (risk of depletion)")
	}

	if a == ActionRecharge && s.UrgentUser() {
		warnings = append(warnings, "WARNING: Recharging while user needs urgent help")
	}

	if a == ActionWait && s.Urgency >= 2 {
		warnings = append(warnings, "WARNING: Waiting while user urgency is high")
	}

	return warnings
}

// AllowedActions returns every action that passes IsActionAllowed for the
// given state, in catalog order.
func AllowedActions(s State) []Action {
	var allowed []Action
	for _, a := range Actions {
		if ok, _ := IsActionAllowed(a, s); ok {
			allowed = append(allowed, a)
		}
	}
	return allowed
}
