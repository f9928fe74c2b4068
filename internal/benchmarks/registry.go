// Package benchmarks serves the read-only market-compensation dataset
// consumed by the lookup endpoints. The projection engine never touches it.
package benchmarks

import (
	"os"
	"sort"
	"sync"

	json "github.com/goccy/go-json"

	"comp-engine/internal/model"
)

var (
	dataPath string
	once     sync.Once
	table    []model.BenchmarkData
	loadErr  error
)

func init() {
	dataPath = os.Getenv("BENCHMARK_DATA_PATH")
}

// builtin is the fallback dataset used when no BENCHMARK_DATA_PATH is set.
var builtin = []model.BenchmarkData{
	{Role: "Software Engineer", Level: "L4", Location: "San Francisco", BaseSalary25th: 165000, BaseSalary50th: 185000, BaseSalary75th: 205000, Equity25th: 60000, Equity50th: 90000, Equity75th: 130000, TotalComp25th: 245000, TotalComp50th: 300000, TotalComp75th: 365000},
	{Role: "Software Engineer", Level: "L5", Location: "San Francisco", BaseSalary25th: 190000, BaseSalary50th: 215000, BaseSalary75th: 240000, Equity25th: 100000, Equity50th: 150000, Equity75th: 220000, TotalComp25th: 320000, TotalComp50th: 400000, TotalComp75th: 500000},
	{Role: "Software Engineer", Level: "L4", Location: "New York", BaseSalary25th: 160000, BaseSalary50th: 180000, BaseSalary75th: 200000, Equity25th: 55000, Equity50th: 85000, Equity75th: 120000, TotalComp25th: 235000, TotalComp50th: 290000, TotalComp75th: 350000},
	{Role: "Software Engineer", Level: "L4", Location: "Remote", BaseSalary25th: 145000, BaseSalary50th: 165000, BaseSalary75th: 185000, Equity25th: 45000, Equity50th: 70000, Equity75th: 100000, TotalComp25th: 210000, TotalComp50th: 260000, TotalComp75th: 315000},
	{Role: "Product Manager", Level: "L5", Location: "San Francisco", BaseSalary25th: 180000, BaseSalary50th: 200000, BaseSalary75th: 225000, Equity25th: 80000, Equity50th: 120000, Equity75th: 175000, TotalComp25th: 290000, TotalComp50th: 355000, TotalComp75th: 435000},
	{Role: "Data Scientist", Level: "L4", Location: "New York", BaseSalary25th: 155000, BaseSalary50th: 175000, BaseSalary75th: 195000, Equity25th: 50000, Equity50th: 75000, Equity75th: 110000, TotalComp25th: 225000, TotalComp50th: 275000, TotalComp75th: 335000},
}

type datasetFile struct {
	Benchmarks []model.BenchmarkData `json:"benchmarks"`
}

func load() {
	if dataPath == "" {
		table = builtin
		return
	}
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		loadErr = err
		return
	}
	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		loadErr = err
		return
	}
	table = file.Benchmarks
}

// All returns the full dataset, loading it on first use.
func All() ([]model.BenchmarkData, error) {
	once.Do(load)
	return table, loadErr
}

// Filter returns rows matching the non-empty criteria.
func Filter(role, level, location string) ([]model.BenchmarkData, error) {
	rows, err := All()
	if err != nil {
		return nil, err
	}
	matched := make([]model.BenchmarkData, 0, len(rows))
	for _, b := range rows {
		if role != "" && b.Role != role {
			continue
		}
		if level != "" && b.Level != level {
			continue
		}
		if location != "" && b.Location != location {
			continue
		}
		matched = append(matched, b)
	}
	return matched, nil
}

func Roles() ([]string, error) {
	return distinct(func(b model.BenchmarkData) string { return b.Role })
}

func Levels() ([]string, error) {
	return distinct(func(b model.BenchmarkData) string { return b.Level })
}

func Locations() ([]string, error) {
	return distinct(func(b model.BenchmarkData) string { return b.Location })
}

func distinct(field func(model.BenchmarkData) string) ([]string, error) {
	rows, err := All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(rows))
	var values []string
	for _, b := range rows {
		v := field(b)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values, nil
}

// Summary aggregates the dataset into counts and median-percentile averages.
func Summary() (*model.BenchmarkSummary, error) {
	rows, err := All()
	if err != nil {
		return nil, err
	}
	roles, _ := Roles()
	levels, _ := Levels()
	locations, _ := Locations()
	summary := &model.BenchmarkSummary{
		TotalBenchmarks: len(rows),
		Roles:           roles,
		Levels:          levels,
		Locations:       locations,
	}
	if len(rows) == 0 {
		return summary, nil
	}
	var base, equity, total float64
	for _, b := range rows {
		base += b.BaseSalary50th
		equity += b.Equity50th
		total += b.TotalComp50th
	}
	n := float64(len(rows))
	summary.AverageBaseSalary50th = base / n
	summary.AverageEquity50th = equity / n
	summary.AverageTotalComp50th = total / n
	return summary, nil
}
