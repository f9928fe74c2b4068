package scenarios

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

type growthRateProps struct {
	GrowthRate decimal.Decimal `json:"growth_rate"`
}

// GrowthRateHandler replaces the annual growth rate on every grant.
type GrowthRateHandler struct{}

func (h *GrowthRateHandler) Validate(offer *model.CompensationOffer, mutation *model.ScenarioMutation) error {
	var props growthRateProps
	if err := json.Unmarshal(mutation.Properties, &props); err != nil {
		return &engine.InvalidScenarioError{Reason: "malformed growth_rate_override properties: " + err.Error()}
	}
	if props.GrowthRate.LessThan(decimal.NewFromInt(-1)) {
		return &engine.InvalidScenarioError{Reason: "growth rate override below -100%"}
	}
	return nil
}

func (h *GrowthRateHandler) Apply(offer *model.CompensationOffer, mutation *model.ScenarioMutation, horizonYears int) (*model.OfferProjection, error) {
	var props growthRateProps
	json.Unmarshal(mutation.Properties, &props)

	for i := range offer.EquityGrants {
		offer.EquityGrants[i].GrowthRate = props.GrowthRate
	}
	return engine.Project(offer, horizonYears)
}

func (h *GrowthRateHandler) Describe(mutation *model.ScenarioMutation) string {
	var props growthRateProps
	json.Unmarshal(mutation.Properties, &props)
	return "growth rate overridden to " + props.GrowthRate.Mul(decimal.NewFromInt(100)).String() + "%"
}
