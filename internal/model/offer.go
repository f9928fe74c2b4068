package model

import "github.com/shopspring/decimal"

func init() {
	// Monetary fields serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnually  = "annually"
)

const (
	GrantTypeRSU    = "RSU"
	GrantTypeOption = "option"
	GrantTypeISO    = "ISO"
)

// VestingSchedule describes how a grant's units become vested over time.
// Cliff and duration are whole months; cliff_months <= duration_months.
type VestingSchedule struct {
	CliffMonths    int    `json:"cliff_months"`
	DurationMonths int    `json:"duration_months"`
	Frequency      string `json:"frequency,omitempty"` // defaults to monthly
}

// EquityGrant is a single equity tranche. Type is a passthrough label
// (strike-price modeling is out of scope). RefreshRate is a percentage of
// the grant's current nominal value reissued at each anniversary; 0 means
// no refreshes. GrowthRate is the annual compounding rate and may be
// negative down to -100%.
type EquityGrant struct {
	Type            string          `json:"type"`
	Value           decimal.Decimal `json:"value"`
	VestingSchedule VestingSchedule `json:"vesting_schedule"`
	StartDate       string          `json:"start_date"`
	RefreshRate     decimal.Decimal `json:"refresh_rate"`
	GrowthRate      decimal.Decimal `json:"growth_rate"`
}

// CompensationOffer is a fully specified job offer. BonusPercentage and
// BonusFixed are nullable; when both are set the percentage wins.
type CompensationOffer struct {
	OfferName       string           `json:"offer_name"`
	BaseSalary      decimal.Decimal  `json:"base_salary"`
	SigningBonus    decimal.Decimal  `json:"signing_bonus"`
	BonusPercentage *decimal.Decimal `json:"bonus_percentage,omitempty"`
	BonusFixed      *decimal.Decimal `json:"bonus_fixed,omitempty"`
	EquityGrants    []EquityGrant    `json:"equity_grants"`
	StartDate       string           `json:"start_date"`
}

// Clone returns a deep copy so scenario mutations never touch the base offer.
func (o *CompensationOffer) Clone() *CompensationOffer {
	c := *o
	if o.BonusPercentage != nil {
		v := *o.BonusPercentage
		c.BonusPercentage = &v
	}
	if o.BonusFixed != nil {
		v := *o.BonusFixed
		c.BonusFixed = &v
	}
	c.EquityGrants = append([]EquityGrant(nil), o.EquityGrants...)
	return &c
}
