package scenarios

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

type refreshRateProps struct {
	RefreshRate decimal.Decimal `json:"refresh_rate"`
}

// RefreshRateHandler replaces the annual refresh rate on every grant.
type RefreshRateHandler struct{}

func (h *RefreshRateHandler) Validate(offer *model.CompensationOffer, mutation *model.ScenarioMutation) error {
	var props refreshRateProps
	if err := json.Unmarshal(mutation.Properties, &props); err != nil {
		return &engine.InvalidScenarioError{Reason: "malformed refresh_rate_override properties: " + err.Error()}
	}
	if props.RefreshRate.IsNegative() {
		return &engine.InvalidScenarioError{Reason: "refresh rate override must be non-negative"}
	}
	return nil
}

func (h *RefreshRateHandler) Apply(offer *model.CompensationOffer, mutation *model.ScenarioMutation, horizonYears int) (*model.OfferProjection, error) {
	var props refreshRateProps
	json.Unmarshal(mutation.Properties, &props)

	for i := range offer.EquityGrants {
		offer.EquityGrants[i].RefreshRate = props.RefreshRate
	}
	return engine.Project(offer, horizonYears)
}

func (h *RefreshRateHandler) Describe(mutation *model.ScenarioMutation) string {
	var props refreshRateProps
	json.Unmarshal(mutation.Properties, &props)
	return "refresh rate overridden to " + props.RefreshRate.String() + "%"
}
