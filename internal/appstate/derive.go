package appstate

import (
	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

const historyPoints = 5

var historyDenom = decimal.NewFromInt(historyPoints)

// deriveGoals maps catalog goal records into the runtime shape screens
// expect, attaching a synthetic savings history and a projected-impact
// line keyed off the goal's status.
func deriveGoals(src []persona.Goal) []Goal {
	out := make([]Goal, 0, len(src))
	for _, g := range src {
		out = append(out, Goal{
			Goal:            g,
			History:         goalHistory(g.CurrentAmount),
			ProjectedImpact: projectedImpact(g.Status),
		})
	}
	return out
}

// goalHistory fabricates a five-point series trending up to the
// current amount. Real contribution history does not exist in the demo.
func goalHistory(current decimal.Decimal) []decimal.Decimal {
	points := make([]decimal.Decimal, 0, historyPoints)
	for i := int64(1); i <= historyPoints; i++ {
		points = append(points, current.Mul(decimal.NewFromInt(i)).Div(historyDenom))
	}
	return points
}

func projectedImpact(status persona.GoalStatus) string {
	switch status {
	case persona.GoalAtRisk:
		return "Current pace misses the deadline by roughly 4 months."
	case persona.GoalRebalanced:
		return "Rebalanced allocation is tracking the revised plan."
	default:
		return "On pace to reach the target before the deadline."
	}
}
