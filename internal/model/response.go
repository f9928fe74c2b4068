package model

import "github.com/shopspring/decimal"

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// OfferReport is one offer's projection plus derived summary figures.
type OfferReport struct {
	Projection        OfferProjection      `json:"projection"`
	CAGR              *decimal.Decimal     `json:"cagr,omitempty"`
	TotalValue        decimal.Decimal      `json:"total_value"`
	Breakdown         BreakdownPercentages `json:"breakdown"`
	EstimatedTaxYear1 *decimal.Decimal     `json:"estimated_tax_year_1,omitempty"`
}

// BreakdownPercentages is the share of each component in total compensation.
type BreakdownPercentages struct {
	Base   decimal.Decimal `json:"base"`
	Bonus  decimal.Decimal `json:"bonus"`
	Equity decimal.Decimal `json:"equity"`
}

type ComparisonResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Offers              []OfferReport       `json:"offers"`
}

type ScenarioResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Result              ScenarioResult      `json:"result"`
}

type MultiScenarioResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Results             []ScenarioResult    `json:"results"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
