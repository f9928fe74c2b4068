package scenarios

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

type exitValuationProps struct {
	ExitDate      string          `json:"exit_date"`
	PriceMultiple decimal.Decimal `json:"price_multiple"`
}

// ExitValuationHandler forecloses vesting at the exit date: unvested value
// is forfeited, vested value is repriced at the exit multiple, and every
// year after the exit year carries zero equity.
type ExitValuationHandler struct{}

func (h *ExitValuationHandler) Validate(offer *model.CompensationOffer, mutation *model.ScenarioMutation) error {
	var props exitValuationProps
	if err := json.Unmarshal(mutation.Properties, &props); err != nil {
		return &engine.InvalidScenarioError{Reason: "malformed exit_valuation properties: " + err.Error()}
	}
	exitDate, ok := engine.ParseDate(props.ExitDate)
	if !ok {
		return &engine.InvalidScenarioError{Reason: fmt.Sprintf("exit date %q is not a valid YYYY-MM-DD date", props.ExitDate)}
	}
	if start, ok := engine.ParseDate(offer.StartDate); ok && exitDate.Before(start) {
		return &engine.InvalidScenarioError{Reason: "exit date is before the offer start date"}
	}
	if props.PriceMultiple.IsNegative() {
		return &engine.InvalidScenarioError{Reason: "exit price multiple must be non-negative"}
	}
	return nil
}

func (h *ExitValuationHandler) Apply(offer *model.CompensationOffer, mutation *model.ScenarioMutation, horizonYears int) (*model.OfferProjection, error) {
	var props exitValuationProps
	json.Unmarshal(mutation.Properties, &props)

	exitDate, _ := engine.ParseDate(props.ExitDate)
	return engine.ProjectWithExit(offer, horizonYears, exitDate, props.PriceMultiple)
}

func (h *ExitValuationHandler) Describe(mutation *model.ScenarioMutation) string {
	var props exitValuationProps
	json.Unmarshal(mutation.Properties, &props)
	return fmt.Sprintf("exit on %s at %sx", props.ExitDate, props.PriceMultiple.String())
}
