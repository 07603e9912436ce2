package metrics

import (
	"fmt"
	"math"
	"strings"

	"github.com/talgya/carebot/internal/runner"
)

// ScenarioVerdict is the head-to-head outcome of one scenario.
type ScenarioVerdict struct {
	Name   string
	A, B   runner.Result
	Winner string // strategy name, or "" for a tie
}

// Comparison holds a full head-to-head between two strategies run over the
// same scenario set.
type Comparison struct {
	NameA, NameB     string
	ReportA, ReportB Report
	Verdicts         []ScenarioVerdict
	WinsA, WinsB     int
	Ties             int
}

// Compare pairs up two result sets by index. Success dominates; among runs
// where both strategies helped the user, higher remaining battery and fewer
// steps break the tie.
func Compare(a, b []runner.Result, nameA, nameB string) Comparison {
	c := Comparison{
		NameA:   nameA,
		NameB:   nameB,
		ReportA: Compute(a),
		ReportB: Compute(b),
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		ra, rb := a[i], b[i]
		scoreA, scoreB := 0, 0

		if ra.UserHelped && !rb.UserHelped {
			scoreA += 100
		} else if rb.UserHelped && !ra.UserHelped {
			scoreB += 100
		}

		if ra.UserHelped && rb.UserHelped {
			if ra.FinalBattery > rb.FinalBattery {
				scoreA += 10
			} else if rb.FinalBattery > ra.FinalBattery {
				scoreB += 10
			}
			if ra.Steps < rb.Steps {
				scoreA += 5
			} else if rb.Steps < ra.Steps {
				scoreB += 5
			}
		}

		v := ScenarioVerdict{Name: ra.Name, A: ra, B: rb}
		switch {
		case scoreA > scoreB:
			v.Winner = nameA
			c.WinsA++
		case scoreB > scoreA:
			v.Winner = nameB
			c.WinsB++
		default:
			c.Ties++
		}
		c.Verdicts = append(c.Verdicts, v)
	}

	return c
}

// Format renders the per-scenario table and the aggregate verdict.
func (c Comparison) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-28s %-22s %-22s %s\n", "Scenario", c.NameA, c.NameB, "Winner")
	for _, v := range c.Verdicts {
		winner := v.Winner
		if winner == "" {
			winner = "Tie"
		}
		fmt.Fprintf(&b, "%-28s %-22s %-22s %s\n",
			truncate(v.Name, 26),
			fmt.Sprintf("Steps:%d Bat:%d%%", v.A.Steps, v.A.FinalBattery),
			fmt.Sprintf("Steps:%d Bat:%d%%", v.B.Steps, v.B.FinalBattery),
			winner,
		)
	}

	fmt.Fprintf(&b, "\nResults: %s %d wins, %s %d wins, %d ties\n",
		c.NameA, c.WinsA, c.NameB, c.WinsB, c.Ties)

	diff := c.ReportA.OverallScore - c.ReportB.OverallScore
	switch {
	case math.Abs(diff) < 0.5:
		fmt.Fprintf(&b, "Both strategies perform similarly overall.\n")
	case diff > 0:
		fmt.Fprintf(&b, "%s outperforms %s overall (%+.1f).\n", c.NameA, c.NameB, diff)
	default:
		fmt.Fprintf(&b, "%s outperforms %s overall (%+.1f).\n", c.NameB, c.NameA, -diff)
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
