package model

import "encoding/json"

// ScenarioMutation describes one what-if variant to apply to a base offer.
// Properties is kind-specific and decoded by the scenario handler.
type ScenarioMutation struct {
	ScenarioID string          `json:"scenario_id,omitempty"`
	Kind       string          `json:"kind"`
	Properties json.RawMessage `json:"properties"`
}

const (
	ScenarioNewStartDate        = "new_start_date"
	ScenarioGrowthRateOverride  = "growth_rate_override"
	ScenarioRefreshRateOverride = "refresh_rate_override"
	ScenarioExitValuation       = "exit_valuation"
)

type ComparisonRequest struct {
	Offers          []CompensationOffer `json:"offers"`
	ProjectionYears int                 `json:"projection_years"`
	TaxState        string              `json:"tax_state,omitempty"`
}

type ScenarioRequest struct {
	Offer           CompensationOffer `json:"offer"`
	Scenario        ScenarioMutation  `json:"scenario"`
	ProjectionYears int               `json:"projection_years"`
}

type MultiScenarioRequest struct {
	Offer           CompensationOffer  `json:"offer"`
	Scenarios       []ScenarioMutation `json:"scenarios"`
	ProjectionYears int                `json:"projection_years"`
}
