package scenarios

import (
	"fmt"

	json "github.com/goccy/go-json"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

type startDateProps struct {
	NewStartDate string `json:"new_start_date"`
}

// StartDateHandler shifts the offer start date and every grant start date
// by the same delta.
type StartDateHandler struct{}

func (h *StartDateHandler) Validate(offer *model.CompensationOffer, mutation *model.ScenarioMutation) error {
	var props startDateProps
	if err := json.Unmarshal(mutation.Properties, &props); err != nil {
		return &engine.InvalidScenarioError{Reason: "malformed new_start_date properties: " + err.Error()}
	}
	if _, ok := engine.ParseDate(props.NewStartDate); !ok {
		return &engine.InvalidScenarioError{Reason: fmt.Sprintf("new start date %q is not a valid YYYY-MM-DD date", props.NewStartDate)}
	}
	if _, ok := engine.ParseDate(offer.StartDate); !ok {
		return &engine.InvalidScenarioError{Reason: fmt.Sprintf("offer start date %q is not a valid YYYY-MM-DD date", offer.StartDate)}
	}
	return nil
}

func (h *StartDateHandler) Apply(offer *model.CompensationOffer, mutation *model.ScenarioMutation, horizonYears int) (*model.OfferProjection, error) {
	var props startDateProps
	json.Unmarshal(mutation.Properties, &props)

	newStart, _ := engine.ParseDate(props.NewStartDate)
	oldStart, _ := engine.ParseDate(offer.StartDate)
	delta := newStart.Sub(oldStart)

	offer.StartDate = props.NewStartDate
	for i := range offer.EquityGrants {
		grantStart, ok := engine.ParseDate(offer.EquityGrants[i].StartDate)
		if !ok {
			continue // Project reports the bad grant date
		}
		offer.EquityGrants[i].StartDate = grantStart.Add(delta).Format(engine.DateLayout)
	}
	return engine.Project(offer, horizonYears)
}

func (h *StartDateHandler) Describe(mutation *model.ScenarioMutation) string {
	var props startDateProps
	json.Unmarshal(mutation.Properties, &props)
	return "start date moved to " + props.NewStartDate
}
