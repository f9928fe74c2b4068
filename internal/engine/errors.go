package engine

// InvalidOfferError reports malformed offer, grant, or schedule data:
// negative amounts, a cliff exceeding its duration, a zero or negative
// horizon, unparseable dates.
type InvalidOfferError struct {
	Reason string
}

func (e *InvalidOfferError) Error() string { return "invalid offer: " + e.Reason }

// InvalidScenarioError reports mutation parameters outside their domain,
// such as a growth override below -100% or an exit date before the offer
// start.
type InvalidScenarioError struct {
	Reason string
}

func (e *InvalidScenarioError) Error() string { return "invalid scenario: " + e.Reason }

// InsufficientDataError reports a growth summary requested on a projection
// too short, or too degenerate, to define one.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string { return "insufficient data: " + e.Reason }
