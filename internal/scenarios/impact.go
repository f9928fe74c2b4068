package scenarios

import (
	"github.com/shopspring/decimal"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Impact measures a scenario projection against its base: total and
// percentage difference plus the year-by-year deltas.
func Impact(base, scenario *model.OfferProjection) *model.ScenarioImpact {
	baseTotal := engine.TotalValue(base)
	scenarioTotal := engine.TotalValue(scenario)
	diff := scenarioTotal.Sub(baseTotal)

	pct := decimal.Zero
	if baseTotal.IsPositive() {
		pct = diff.Div(baseTotal).Mul(hundred)
	}

	n := len(base.Years)
	if len(scenario.Years) < n {
		n = len(scenario.Years)
	}
	yearly := make([]model.YearlyDifference, 0, n)
	for i := 0; i < n; i++ {
		yearDiff := scenario.Years[i].Total.Sub(base.Years[i].Total)
		yearPct := decimal.Zero
		if base.Years[i].Total.IsPositive() {
			yearPct = yearDiff.Div(base.Years[i].Total).Mul(hundred)
		}
		yearly = append(yearly, model.YearlyDifference{
			Year:             base.Years[i].Year,
			Difference:       yearDiff,
			PercentageChange: yearPct,
		})
	}
	return &model.ScenarioImpact{
		TotalDifference:   diff,
		PercentageChange:  pct,
		YearlyDifferences: yearly,
	}
}
