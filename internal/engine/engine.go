package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"comp-engine/internal/model"
)

// Project computes the year-by-year compensation breakdown for an offer
// over exactly horizonYears years. The engine is a pure function of its
// inputs: it holds no state across calls and performs no I/O.
func Project(offer *model.CompensationOffer, horizonYears int) (*model.OfferProjection, error) {
	return project(offer, horizonYears, nil)
}

type exitTerms struct {
	date     time.Time
	multiple decimal.Decimal
}

// ProjectWithExit projects an offer under an exit valuation: equity is
// zeroed for every year strictly after the year containing exitDate, and
// the exit year realizes the remaining vested fraction at issuance value
// times priceMultiple.
func ProjectWithExit(offer *model.CompensationOffer, horizonYears int, exitDate time.Time, priceMultiple decimal.Decimal) (*model.OfferProjection, error) {
	return project(offer, horizonYears, &exitTerms{date: exitDate, multiple: priceMultiple})
}

func project(offer *model.CompensationOffer, horizonYears int, exit *exitTerms) (*model.OfferProjection, error) {
	if horizonYears < 1 {
		return nil, &InvalidOfferError{Reason: fmt.Sprintf("projection horizon must be at least 1 year, got %d", horizonYears)}
	}
	start, grants, err := validateOffer(offer)
	if err != nil {
		return nil, err
	}
	exitYear := 0
	if exit != nil {
		if exit.date.Before(start) {
			return nil, &InvalidScenarioError{Reason: "exit date is before the offer start date"}
		}
		if exit.multiple.IsNegative() {
			return nil, &InvalidScenarioError{Reason: "exit price multiple must be non-negative"}
		}
		exitYear = yearIndexOf(start, exit.date)
	}

	perf := performanceBonus(offer)
	years := make([]model.YearlyProjection, 0, horizonYears)
	for y := 1; y <= horizonYears; y++ {
		bonus := perf
		if y == 1 {
			bonus = bonus.Add(offer.SigningBonus)
		}
		var equity decimal.Decimal
		switch {
		case exit != nil && y > exitYear:
			// forfeited
		case exit != nil && y == exitYear:
			equity = exitYearEquity(start, grants, exit.date, exitYear, exit.multiple)
		default:
			equity = equityValueForYear(start, grants, y)
		}
		total := offer.BaseSalary.Add(bonus).Add(equity)
		years = append(years, model.YearlyProjection{
			Year:        y,
			BaseSalary:  offer.BaseSalary,
			Bonus:       bonus,
			EquityValue: equity,
			Total:       total,
		})
	}
	return &model.OfferProjection{OfferName: offer.OfferName, Years: years}, nil
}

// performanceBonus resolves the annual bonus policy: percentage of base
// when set, otherwise the fixed amount, otherwise zero.
func performanceBonus(offer *model.CompensationOffer) decimal.Decimal {
	if offer.BonusPercentage != nil {
		return offer.BaseSalary.Mul(*offer.BonusPercentage).Div(hundred)
	}
	if offer.BonusFixed != nil {
		return *offer.BonusFixed
	}
	return decimal.Zero
}

func validateOffer(offer *model.CompensationOffer) (time.Time, []grantState, error) {
	if offer.BaseSalary.IsNegative() {
		return time.Time{}, nil, &InvalidOfferError{Reason: "base salary must be non-negative"}
	}
	if offer.SigningBonus.IsNegative() {
		return time.Time{}, nil, &InvalidOfferError{Reason: "signing bonus must be non-negative"}
	}
	if offer.BonusPercentage != nil && offer.BonusPercentage.IsNegative() {
		return time.Time{}, nil, &InvalidOfferError{Reason: "bonus percentage must be non-negative"}
	}
	if offer.BonusFixed != nil && offer.BonusFixed.IsNegative() {
		return time.Time{}, nil, &InvalidOfferError{Reason: "fixed bonus must be non-negative"}
	}
	start, ok := ParseDate(offer.StartDate)
	if !ok {
		return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("start date %q is not a valid YYYY-MM-DD date", offer.StartDate)}
	}

	grants := make([]grantState, 0, len(offer.EquityGrants))
	negOne := one.Neg()
	for i, g := range offer.EquityGrants {
		if g.Value.IsNegative() {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: value must be non-negative", i+1)}
		}
		if g.GrowthRate.LessThan(negOne) {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: growth rate below -100%%", i+1)}
		}
		if g.RefreshRate.IsNegative() {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: refresh rate must be non-negative", i+1)}
		}
		s := g.VestingSchedule
		if s.DurationMonths <= 0 {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: vesting duration must be positive", i+1)}
		}
		if s.CliffMonths < 0 || s.CliffMonths > s.DurationMonths {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: cliff of %d months exceeds duration of %d months", i+1, s.CliffMonths, s.DurationMonths)}
		}
		if _, ok := stepMonths(s.Frequency); !ok {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: unknown vesting frequency %q", i+1, s.Frequency)}
		}
		gs, ok := ParseDate(g.StartDate)
		if !ok {
			return time.Time{}, nil, &InvalidOfferError{Reason: fmt.Sprintf("grant %d: start date %q is not a valid YYYY-MM-DD date", i+1, g.StartDate)}
		}
		grants = append(grants, grantState{
			value:    g.Value,
			start:    gs,
			schedule: s,
			growth:   g.GrowthRate,
			refresh:  g.RefreshRate,
		})
	}
	return start, grants, nil
}

// TotalValue sums yearly totals across a projection.
func TotalValue(p *model.OfferProjection) decimal.Decimal {
	total := decimal.Zero
	for _, y := range p.Years {
		total = total.Add(y.Total)
	}
	return total
}

// Breakdown returns the percentage share of base, bonus, and equity in the
// projection's total compensation.
func Breakdown(p *model.OfferProjection) model.BreakdownPercentages {
	base, bonus, equity := decimal.Zero, decimal.Zero, decimal.Zero
	for _, y := range p.Years {
		base = base.Add(y.BaseSalary)
		bonus = bonus.Add(y.Bonus)
		equity = equity.Add(y.EquityValue)
	}
	total := base.Add(bonus).Add(equity)
	if total.IsZero() {
		return model.BreakdownPercentages{}
	}
	return model.BreakdownPercentages{
		Base:   base.Div(total).Mul(hundred),
		Bonus:  bonus.Div(total).Mul(hundred),
		Equity: equity.Div(total).Mul(hundred),
	}
}
