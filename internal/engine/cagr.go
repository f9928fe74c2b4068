package engine

import (
	"github.com/shopspring/decimal"

	"comp-engine/internal/model"
)

// CAGR reduces a projection's yearly totals to a compound annual growth
// rate: (last/first)^(1/(n-1)) - 1. At least two years and a positive
// first-year total are required.
func CAGR(p *model.OfferProjection) (decimal.Decimal, error) {
	n := len(p.Years)
	if n < 2 {
		return decimal.Decimal{}, &InsufficientDataError{Reason: "growth rate needs a projection of at least 2 years"}
	}
	first := p.Years[0].Total
	last := p.Years[n-1].Total
	if !first.IsPositive() {
		return decimal.Decimal{}, &InsufficientDataError{Reason: "growth rate is undefined for a non-positive first-year total"}
	}
	exponent := one.Div(decimal.NewFromInt(int64(n - 1)))
	root, err := last.Div(first).PowWithPrecision(exponent, compoundPrecision)
	if err != nil {
		return decimal.Decimal{}, &InsufficientDataError{Reason: "growth rate is undefined for these projection totals"}
	}
	return root.Sub(one), nil
}
