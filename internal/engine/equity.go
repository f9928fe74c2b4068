package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"comp-engine/internal/model"
)

// compoundPrecision bounds fractional-exponent compounding; rounding to the
// currency minor unit happens only at the presentation boundary.
const compoundPrecision = 16

// grantState is a single equity tranche with a parsed start date: either a
// declared grant or a synthetic refresh tranche derived from one.
type grantState struct {
	value    decimal.Decimal // nominal value at issuance
	start    time.Time
	schedule model.VestingSchedule
	growth   decimal.Decimal
	refresh  decimal.Decimal
}

// compound grows value by (1+rate) per whole year over the given number of
// months, with proportional fractional-year compounding for the remainder.
func compound(value, rate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 || rate.IsZero() || value.IsZero() {
		return value
	}
	base := one.Add(rate)
	years := decimal.NewFromInt(int64(months)).Div(twelve)
	factor, err := base.PowWithPrecision(years, compoundPrecision)
	if err != nil {
		// base < 0 is rejected by validation; base == 0 yields zero value
		return decimal.Zero
	}
	return value.Mul(factor)
}

// expandGrant materializes a declared grant plus every refresh tranche it
// spawns through the limit date. All descendants share the parent's
// anniversary cycle, so each anniversary issues refresh_rate percent of the
// combined nominal value of the tranches outstanding at that point; the
// new tranche keeps the parent's schedule shape, growth, and refresh rate
// and refreshes further itself. Expansion is bounded by the limit, one
// tranche per anniversary.
func expandGrant(g grantState, limit time.Time) []grantState {
	out := []grantState{g}
	if !g.refresh.IsPositive() {
		return out
	}
	rate := g.refresh.Div(hundred)
	for t := 1; ; t++ {
		anniv := g.start.AddDate(t, 0, 0)
		if anniv.After(limit) {
			break
		}
		issued := decimal.Zero
		for _, p := range out {
			issued = issued.Add(compound(p.value, p.growth, monthsBetween(p.start, anniv)))
		}
		child := g
		child.start = anniv
		child.value = issued.Mul(rate)
		out = append(out, child)
	}
	return out
}

// equityValueForYear sums, over every grant active by the end of the year,
// the grant's nominal value as of the year's valuation date times the
// fraction newly vesting in that year. Refresh tranches are generated
// lazily per requested year.
func equityValueForYear(offerStart time.Time, declared []grantState, yearIdx int) decimal.Decimal {
	limit := yearOpen(offerStart, yearIdx+1)
	valuation := yearOpen(offerStart, yearIdx)
	total := decimal.Zero
	for _, root := range declared {
		for _, g := range expandGrant(root, limit) {
			delta := VestedInYear(g.schedule, g.start, yearIdx, offerStart)
			if delta.IsZero() {
				continue
			}
			nominal := compound(g.value, g.growth, monthsBetween(g.start, valuation))
			total = total.Add(nominal.Mul(delta))
		}
	}
	return total
}

// exitYearEquity realizes the vested-but-not-yet-attributed fraction of
// every tranche as of the exit date, priced at issuance value times the
// exit multiple instead of the compounded growth value. Unvested value is
// forfeited.
func exitYearEquity(offerStart time.Time, declared []grantState, exitDate time.Time, exitYear int, multiple decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, root := range declared {
		for _, g := range expandGrant(root, exitDate) {
			vested := VestedFraction(g.schedule, g.start, exitDate)
			if exitYear > 1 {
				vested = vested.Sub(VestedFraction(g.schedule, g.start, yearOpen(offerStart, exitYear-1)))
			}
			if !vested.IsPositive() {
				continue
			}
			total = total.Add(g.value.Mul(vested).Mul(multiple))
		}
	}
	return total
}
