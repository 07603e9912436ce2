package policy

import "github.com/talgya/carebot/internal/robot"

// Weights is one safety/helpfulness/efficiency triple. The three always
// sum to 1 in the shipped configurations, though the scorer does not
// require it.
type Weights struct {
	Safety      float64 `yaml:"safety"`
	Helpfulness float64 `yaml:"helpfulness"`
	Efficiency  float64 `yaml:"efficiency"`
}

// Config selects which weight triple applies in each context. Contexts are
// checked in order: critical urgency, high urgency, critical battery, low
// battery, then the balanced default. The zero value is unusable — thread
// DefaultConfig (or a YAML override) into New.
type Config struct {
	CriticalUrgency Weights `yaml:"critical_urgency"` // urgency >= 3
	HighUrgency     Weights `yaml:"high_urgency"`     // urgency >= 2
	CriticalBattery Weights `yaml:"critical_battery"` // battery < 20
	LowBattery      Weights `yaml:"low_battery"`      // battery < 35
	Balanced        Weights `yaml:"balanced"`
}

// DefaultConfig returns the shipped weight triples: critical urgency leans
// hard on helpfulness, low battery leans on safety, and the default favors
// helping while safe.
func DefaultConfig() Config {
	return Config{
		CriticalUrgency: Weights{Safety: 0.20, Helpfulness: 0.70, Efficiency: 0.10},
		HighUrgency:     Weights{Safety: 0.25, Helpfulness: 0.60, Efficiency: 0.15},
		CriticalBattery: Weights{Safety: 0.70, Helpfulness: 0.20, Efficiency: 0.10},
		LowBattery:      Weights{Safety: 0.55, Helpfulness: 0.30, Efficiency: 0.15},
		Balanced:        Weights{Safety: 0.25, Helpfulness: 0.55, Efficiency: 0.20},
	}
}

// weightsFor picks the context-dependent triple for a state.
func (c Config) weightsFor(s robot.State) Weights {
	switch {
	case s.Urgency >= 3:
		return c.CriticalUrgency
	case s.Urgency >= 2:
		return c.HighUrgency
	case s.Battery < 20:
		return c.CriticalBattery
	case s.Battery < 35:
		return c.LowBattery
	default:
		return c.Balanced
	}
}

// ScoreAction combines the three sub-scores under the context weights.
// Higher is better. Scoring is a total function: it never fails, and a
// blocked action still scores (filtering is the caller's job).
func ScoreAction(a robot.Action, s robot.State, cfg Config) float64 {
	w := cfg.weightsFor(s)
	return scoreSafety(a, s)*w.Safety +
		scoreHelpfulness(a, s)*w.Helpfulness +
		scoreEfficiency(a, s)*w.Efficiency
}

// scoreSafety rewards actions that avoid battery depletion and keep safe
// operating margins.
func scoreSafety(a robot.Action, s robot.State) float64 {
	score := 50.0

	switch a {
	case robot.ActionHelpUser:
		switch {
		case s.Battery < 10:
			score -= 100
		case s.Battery < 20:
			score -= 60
		case s.Battery < 30:
			score -= 30
		case s.Battery < 45:
			score -= 10
		default:
			score += 20
		}

	case robot.ActionRecharge:
		switch {
		case s.Battery < 20:
			score += 80
		case s.Battery < 35:
			score += 60
		case s.Battery < 50:
			score += 40
		case s.Battery < 70:
			score += 15
		default:
			score -= 10
		}

	case robot.ActionWait:
		if s.Battery > 50 {
			score += 10
		} else {
			score -= 30
		}

	case robot.ActionCallForHelp:
		score += 20
	}

	return score
}

// urgencyWeight scales helping value supra-linearly by urgency level.
var urgencyWeight = [4]float64{0, 1.5, 3.0, 5.0}

// scoreHelpfulness rewards actions that address the user's need, scaled by
// how urgent that need is.
func scoreHelpfulness(a robot.Action, s robot.State) float64 {
	var score float64

	switch a {
	case robot.ActionHelpUser:
		score = 100 * urgencyWeight[s.Urgency]

		if s.Battery > 45 {
			score += 40
		} else if s.Battery > 30 {
			score += 20
		}

		if s.Urgency >= 3 {
			score += 80
		} else if s.Urgency >= 2 {
			score += 40
		}

	case robot.ActionRecharge:
		score = 40 // necessary for future help

		switch {
		case s.Urgency >= 3:
			score -= 100
		case s.Urgency >= 2:
			score -= 60
		case s.Urgency == 1:
			score -= 20
		}

		switch {
		case s.Battery < 15:
			score += 80
		case s.Battery < 25:
			score += 60
		case s.Battery < 40:
			score += 35
		}

	case robot.ActionWait:
		switch s.Urgency {
		case 0:
			score = 20
		case 1:
			score = -25
		case 2:
			score = -70
		default:
			score = -100
		}

	case robot.ActionCallForHelp:
		if s.Urgency >= 2 {
			score = 40 // better than nothing when we cannot serve
		} else {
			score = -40 // giving up too early
		}
	}

	return score
}

// scoreEfficiency penalizes wasted or redundant resource use.
func scoreEfficiency(a robot.Action, s robot.State) float64 {
	score := 50.0

	switch a {
	case robot.ActionHelpUser:
		if s.Urgency > 0 {
			score += 30
		} else {
			score -= 20
		}

		if s.Battery-robot.NetBatteryCost(robot.ActionHelpUser) < 20 {
			score -= 25 // draining into the danger zone
		}

	case robot.ActionRecharge:
		switch {
		case s.Battery < 30:
			score += 40
		case s.Battery < 50:
			score += 20
		case s.Battery < 70:
			score -= 10
		default:
			score -= 40
		}

	case robot.ActionWait:
		score -= 20
		if s.Battery < 15 && s.Urgency == 0 {
			score += 30
		}

	case robot.ActionCallForHelp:
		score -= 40
		if s.Battery < 10 || (s.Battery < 20 && s.Urgency >= 2) {
			score += 50
		}
	}

	return score
}
