package model

import "github.com/shopspring/decimal"

// YearlyProjection is one year of the compensation breakdown. Records are
// emitted once and never mutated; Total always equals base + bonus + equity.
type YearlyProjection struct {
	Year        int             `json:"year"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Bonus       decimal.Decimal `json:"bonus"`
	EquityValue decimal.Decimal `json:"equity_value"`
	Total       decimal.Decimal `json:"total"`
}

// OfferProjection is the full multi-year series for one offer, year 1..N
// in chronological order.
type OfferProjection struct {
	OfferName string             `json:"offer_name"`
	Years     []YearlyProjection `json:"years"`
}

// ScenarioResult pairs a mutation with the projection it produced.
type ScenarioResult struct {
	ScenarioID  string           `json:"scenario_id"`
	Kind        string           `json:"kind"`
	Description string           `json:"description"`
	Projection  OfferProjection  `json:"projection"`
	CAGR        *decimal.Decimal `json:"cagr,omitempty"`
	Impact      *ScenarioImpact  `json:"impact,omitempty"`
}

// ScenarioImpact is the delta between a scenario projection and its base.
type ScenarioImpact struct {
	TotalDifference   decimal.Decimal    `json:"total_difference"`
	PercentageChange  decimal.Decimal    `json:"percentage_change"`
	YearlyDifferences []YearlyDifference `json:"yearly_differences"`
}

type YearlyDifference struct {
	Year             int             `json:"year"`
	Difference       decimal.Decimal `json:"difference"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}
