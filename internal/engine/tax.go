package engine

import "github.com/shopspring/decimal"

// Simplified flat rates; real tax computation is far more involved and out
// of scope.
var (
	federalRate      = decimal.RequireFromString("0.24")
	ficaRate         = decimal.RequireFromString("0.0765")
	defaultStateRate = decimal.RequireFromString("0.05")

	stateRates = map[string]decimal.Decimal{
		"CA": decimal.RequireFromString("0.093"),
		"NY": decimal.RequireFromString("0.0685"),
		"TX": decimal.Zero,
		"WA": decimal.Zero,
		"CO": decimal.RequireFromString("0.044"),
	}
)

// EstimateTax approximates one year's tax burden: federal, state, and FICA
// on cash compensation, plus equity taxed as ordinary income when vested.
func EstimateTax(baseSalary, bonus, equityValue decimal.Decimal, state string) decimal.Decimal {
	stateRate, ok := stateRates[state]
	if !ok {
		stateRate = defaultStateRate
	}
	cash := baseSalary.Add(bonus)
	cashTax := cash.Mul(federalRate.Add(stateRate).Add(ficaRate))
	equityTax := equityValue.Mul(federalRate)
	return cashTax.Add(equityTax)
}
