package scenarios

import (
	"github.com/google/uuid"

	"comp-engine/internal/engine"
	"comp-engine/internal/model"
)

// Run applies one mutation to a clone of the base offer and returns its
// projection with CAGR (when defined) and the impact against the base.
func Run(base *model.CompensationOffer, mutation *model.ScenarioMutation, horizonYears int) (*model.ScenarioResult, error) {
	baseProjection, err := engine.Project(base, horizonYears)
	if err != nil {
		return nil, err
	}
	return run(base, baseProjection, mutation, horizonYears)
}

// RunMultiple runs an ordered sequence of mutations, each computed
// independently against the same unmutated base offer. Mutations never
// compose onto each other's output.
func RunMultiple(base *model.CompensationOffer, mutations []model.ScenarioMutation, horizonYears int) ([]model.ScenarioResult, error) {
	if len(mutations) == 0 {
		return nil, &engine.InvalidScenarioError{Reason: "at least one scenario is required"}
	}
	baseProjection, err := engine.Project(base, horizonYears)
	if err != nil {
		return nil, err
	}
	results := make([]model.ScenarioResult, 0, len(mutations))
	for i := range mutations {
		res, err := run(base, baseProjection, &mutations[i], horizonYears)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func run(base *model.CompensationOffer, baseProjection *model.OfferProjection, mutation *model.ScenarioMutation, horizonYears int) (*model.ScenarioResult, error) {
	handler, ok := Get(mutation.Kind)
	if !ok {
		return nil, &engine.InvalidScenarioError{Reason: "unknown scenario kind: " + mutation.Kind}
	}

	offer := base.Clone()
	if err := handler.Validate(offer, mutation); err != nil {
		return nil, err
	}
	projection, err := handler.Apply(offer, mutation, horizonYears)
	if err != nil {
		return nil, err
	}

	id := mutation.ScenarioID
	if id == "" {
		id = uuid.New().String()
	}
	result := &model.ScenarioResult{
		ScenarioID:  id,
		Kind:        mutation.Kind,
		Description: handler.Describe(mutation),
		Projection:  *projection,
		Impact:      Impact(baseProjection, projection),
	}
	if cagr, err := engine.CAGR(projection); err == nil {
		result.CAGR = &cagr
	}
	return result, nil
}
