package scenarios

import "comp-engine/internal/model"

// Handler defines the contract for all scenario implementations. Each
// scenario validates its parameters against the base offer, then produces
// a projection from a mutated copy. The offer passed to both methods is
// already a private clone; the caller's base offer is never touched.
type Handler interface {
	Validate(offer *model.CompensationOffer, mutation *model.ScenarioMutation) error
	Apply(offer *model.CompensationOffer, mutation *model.ScenarioMutation, horizonYears int) (*model.OfferProjection, error)
	Describe(mutation *model.ScenarioMutation) string
}
