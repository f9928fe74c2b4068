package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"comp-engine/internal/model"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

func stepMonths(frequency string) (int, bool) {
	switch frequency {
	case model.FrequencyMonthly, "":
		return 1, true
	case model.FrequencyQuarterly:
		return 3, true
	case model.FrequencyAnnually:
		return 12, true
	}
	return 0, false
}

// VestedFraction returns the fraction of a grant vested as of a date,
// in [0, 1]. Nothing vests before the cliff; reaching the cliff vests every
// step scheduled up to and including it at once; the grant is fully vested
// at duration_months. A final partial step vests in full at the duration
// boundary, never overshooting 1.
func VestedFraction(s model.VestingSchedule, grantStart, asOf time.Time) decimal.Decimal {
	elapsed := monthsBetween(grantStart, asOf)
	if elapsed < 0 || elapsed < s.CliffMonths {
		return decimal.Zero
	}
	if elapsed >= s.DurationMonths {
		return one
	}
	step, ok := stepMonths(s.Frequency)
	if !ok {
		return decimal.Zero
	}
	totalSteps := (s.DurationMonths + step - 1) / step
	done := elapsed / step
	if done > totalSteps {
		done = totalSteps
	}
	return decimal.NewFromInt(int64(done)).Div(decimal.NewFromInt(int64(totalSteps)))
}

// VestedInYear returns the fraction of a grant that newly vests within
// projection year yearIdx. Years are valued at their opening anniversary:
// the delta between the fraction at the open of year N and the open of
// year N-1, clipped at zero. A grant with a 12-month cliff issued on the
// offer start date therefore contributes nothing in year 1; the crammed
// cliff portion lands in year 2.
func VestedInYear(s model.VestingSchedule, grantStart time.Time, yearIdx int, offerStart time.Time) decimal.Decimal {
	cur := VestedFraction(s, grantStart, yearOpen(offerStart, yearIdx))
	prev := decimal.Zero
	if yearIdx > 1 {
		prev = VestedFraction(s, grantStart, yearOpen(offerStart, yearIdx-1))
	}
	delta := cur.Sub(prev)
	if delta.IsNegative() {
		return decimal.Zero
	}
	return delta
}
