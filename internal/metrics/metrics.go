// Package metrics scores finished runs so decision strategies can be
// compared quantitatively.
package metrics

import (
	"fmt"
	"strings"

	"github.com/talgya/carebot/internal/runner"
)

// Report is the full metric set computed over a batch of runs. All values
// are 0-100 percentages except AvgSteps.
type Report struct {
	SuccessRate       float64 `json:"success_rate"`
	AvgSteps          float64 `json:"avg_steps"`
	BatteryEfficiency float64 `json:"battery_efficiency"`
	UrgencyResponse   float64 `json:"urgency_response"`
	RiskScore         float64 `json:"risk_score"`
	CompletionScore   float64 `json:"completion_score"`
	OverallScore      float64 `json:"overall_score"`
}

// Compute calculates every metric over the results. An empty batch yields
// the zero Report.
func Compute(results []runner.Result) Report {
	if len(results) == 0 {
		return Report{}
	}
	return Report{
		SuccessRate:       successRate(results),
		AvgSteps:          avgSteps(results),
		BatteryEfficiency: batteryEfficiency(results),
		UrgencyResponse:   urgencyResponse(results),
		RiskScore:         riskScore(results),
		CompletionScore:   completionScore(results),
		OverallScore:      overallScore(results),
	}
}

func successRate(results []runner.Result) float64 {
	successes := 0
	for _, r := range results {
		if r.UserHelped {
			successes++
		}
	}
	return float64(successes) / float64(len(results)) * 100
}

func avgSteps(results []runner.Result) float64 {
	total := 0
	for _, r := range results {
		total += r.Steps
	}
	return float64(total) / float64(len(results))
}

// batteryEfficiency rewards runs that avoided depletion, kept safe levels,
// and did not overcharge pointlessly.
func batteryEfficiency(results []runner.Result) float64 {
	var total float64
	for _, r := range results {
		score := 100.0

		if r.BatteryDepleted {
			score -= 50
		}

		if r.FinalBattery < 15 {
			score -= 25
		} else if r.FinalBattery < 25 {
			score -= 10
		}

		if r.FinalBattery >= 40 {
			score += 10
		}

		if r.FinalBattery > 80 && !r.UserHelped {
			score -= 10 // wasteful overcharging
		}

		total += clamp(score, 0, 100)
	}
	return total / float64(len(results))
}

// urgencyResponse rewards fast resolution scaled by how urgent the initial
// need was.
func urgencyResponse(results []runner.Result) float64 {
	var total float64
	for _, r := range results {
		var score float64

		switch {
		case r.InitialUrgency == 0:
			if r.UserHelped {
				score = 100
			} else {
				score = 80
			}

		case r.InitialUrgency == 1:
			switch {
			case r.UserHelped && r.Steps <= 3:
				score = 100
			case r.UserHelped:
				score = 85
			default:
				score = 60
			}

		case r.InitialUrgency == 2:
			switch {
			case r.UserHelped && r.Steps <= 3:
				score = 100
			case r.UserHelped && r.Steps <= 5:
				score = 85
			case r.UserHelped:
				score = 70
			default:
				score = 40
			}

		default: // critical
			switch {
			case r.UserHelped && r.Steps <= 3:
				score = 100
			case r.UserHelped && r.Steps <= 5:
				score = 80
			case r.UserHelped:
				score = 60
			default:
				score = 20
			}
		}

		total += score
	}
	return total / float64(len(results))
}

// riskScore rewards strategies that stayed out of dangerous battery
// territory. Depletion zeroes the run's score.
func riskScore(results []runner.Result) float64 {
	var total float64
	for _, r := range results {
		if r.BatteryDepleted {
			continue // catastrophic failure scores 0
		}

		score := 100.0
		switch {
		case r.FinalBattery < 10:
			score -= 40
		case r.FinalBattery < 20:
			score -= 20
		case r.FinalBattery < 30:
			score -= 10
		}

		if r.FinalBattery >= 50 {
			score += 10
		} else if r.FinalBattery >= 40 {
			score += 5
		}

		total += clamp(score, 0, 100)
	}
	return total / float64(len(results))
}

func completionScore(results []runner.Result) float64 {
	var total float64
	for _, r := range results {
		switch {
		case r.UserHelped:
			total += 100
		case !r.BatteryDepleted:
			total += 30 // partial credit for not failing catastrophically
		}
	}
	return total / float64(len(results))
}

func overallScore(results []runner.Result) float64 {
	return successRate(results)*0.30 +
		batteryEfficiency(results)*0.20 +
		urgencyResponse(results)*0.25 +
		riskScore(results)*0.15 +
		completionScore(results)*0.10
}

// Grade converts a 0-100 score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Format renders a report as an aligned text table.
func (r Report) Format(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "%-22s %6.1f%%  %s\n", "Success Rate", r.SuccessRate, Grade(r.SuccessRate))
	fmt.Fprintf(&b, "%-22s %6.1f%%  %s\n", "Battery Efficiency", r.BatteryEfficiency, Grade(r.BatteryEfficiency))
	fmt.Fprintf(&b, "%-22s %6.1f%%  %s\n", "Urgency Response", r.UrgencyResponse, Grade(r.UrgencyResponse))
	fmt.Fprintf(&b, "%-22s %6.1f%%  %s\n", "Risk Management", r.RiskScore, Grade(r.RiskScore))
	fmt.Fprintf(&b, "%-22s %6.1f%%  %s\n", "Task Completion", r.CompletionScore, Grade(r.CompletionScore))
	fmt.Fprintf(&b, "%-22s %6.1f%%  %s\n", "OVERALL SCORE", r.OverallScore, Grade(r.OverallScore))
	fmt.Fprintf(&b, "Average steps per scenario: %.1f\n", r.AvgSteps)
	return b.String()
}
