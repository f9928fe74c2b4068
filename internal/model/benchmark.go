package model

// BenchmarkData is one row of the external market-compensation dataset.
// The projection engine never reads these; they feed the lookup endpoints.
type BenchmarkData struct {
	Role           string  `json:"role"`
	Level          string  `json:"level"`
	Location       string  `json:"location"`
	BaseSalary25th float64 `json:"base_salary_25th"`
	BaseSalary50th float64 `json:"base_salary_50th"`
	BaseSalary75th float64 `json:"base_salary_75th"`
	Equity25th     float64 `json:"equity_25th"`
	Equity50th     float64 `json:"equity_50th"`
	Equity75th     float64 `json:"equity_75th"`
	TotalComp25th  float64 `json:"total_comp_25th"`
	TotalComp50th  float64 `json:"total_comp_50th"`
	TotalComp75th  float64 `json:"total_comp_75th"`
}

type BenchmarkSummary struct {
	TotalBenchmarks       int      `json:"total_benchmarks"`
	AverageBaseSalary50th float64  `json:"average_base_salary_50th"`
	AverageEquity50th     float64  `json:"average_equity_50th"`
	AverageTotalComp50th  float64  `json:"average_total_comp_50th"`
	Roles                 []string `json:"roles"`
	Levels                []string `json:"levels"`
	Locations             []string `json:"locations"`
}
