package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"comp-engine/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := ParseDate(s)
	if !ok {
		t.Fatalf("bad test date %q", s)
	}
	return d
}

func TestVestedFractionZeroBeforeCliff(t *testing.T) {
	s := model.VestingSchedule{CliffMonths: 12, DurationMonths: 48, Frequency: model.FrequencyMonthly}
	start := mustDate(t, "2025-01-15")

	for _, months := range []int{0, 1, 6, 11} {
		f := VestedFraction(s, start, start.AddDate(0, months, 0))
		if !f.IsZero() {
			t.Fatalf("expected 0 vested at month %d, got %s", months, f)
		}
	}
}

func TestVestedFractionCliffCram(t *testing.T) {
	s := model.VestingSchedule{CliffMonths: 12, DurationMonths: 48, Frequency: model.FrequencyMonthly}
	start := mustDate(t, "2025-01-15")

	f := VestedFraction(s, start, start.AddDate(0, 12, 0))
	if !f.Equal(decimal.RequireFromString("0.25")) {
		t.Fatalf("expected 0.25 vested at the cliff, got %s", f)
	}
}

func TestVestedFractionMonotonicAndBounded(t *testing.T) {
	s := model.VestingSchedule{CliffMonths: 12, DurationMonths: 48, Frequency: model.FrequencyMonthly}
	start := mustDate(t, "2025-01-15")

	prev := decimal.Zero
	for months := 0; months <= 60; months++ {
		f := VestedFraction(s, start, start.AddDate(0, months, 0))
		if f.IsNegative() || f.GreaterThan(decimal.NewFromInt(1)) {
			t.Fatalf("fraction out of [0,1] at month %d: %s", months, f)
		}
		if f.LessThan(prev) {
			t.Fatalf("fraction decreased at month %d: %s < %s", months, f, prev)
		}
		prev = f
	}

	if f := VestedFraction(s, start, start.AddDate(0, 48, 0)); !f.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected exactly 1.0 at duration, got %s", f)
	}
}

func TestVestedFractionQuarterlySteps(t *testing.T) {
	s := model.VestingSchedule{CliffMonths: 12, DurationMonths: 48, Frequency: model.FrequencyQuarterly}
	start := mustDate(t, "2025-01-15")

	// 4 of 16 quarters at month 14, 5 at month 15
	if f := VestedFraction(s, start, start.AddDate(0, 14, 0)); !f.Equal(decimal.RequireFromString("0.25")) {
		t.Fatalf("expected 0.25 at month 14, got %s", f)
	}
	if f := VestedFraction(s, start, start.AddDate(0, 15, 0)); !f.Equal(decimal.NewFromInt(5).Div(decimal.NewFromInt(16))) {
		t.Fatalf("expected 5/16 at month 15, got %s", f)
	}
}

func TestVestedFractionPartialFinalStep(t *testing.T) {
	// 10 months quarterly: the final partial step vests fully at the
	// duration boundary with no overshoot.
	s := model.VestingSchedule{CliffMonths: 0, DurationMonths: 10, Frequency: model.FrequencyQuarterly}
	start := mustDate(t, "2025-01-15")

	if f := VestedFraction(s, start, start.AddDate(0, 9, 0)); !f.Equal(decimal.RequireFromString("0.75")) {
		t.Fatalf("expected 0.75 at month 9, got %s", f)
	}
	if f := VestedFraction(s, start, start.AddDate(0, 10, 0)); !f.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected 1.0 at month 10, got %s", f)
	}
}

func TestVestedInYearDeltas(t *testing.T) {
	s := model.VestingSchedule{CliffMonths: 12, DurationMonths: 48, Frequency: model.FrequencyMonthly}
	start := mustDate(t, "2025-01-15")

	expected := map[int]string{1: "0", 2: "0.25", 3: "0.25", 4: "0.25", 5: "0.25", 6: "0"}
	for year, want := range expected {
		got := VestedInYear(s, start, year, start)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("year %d: expected %s newly vested, got %s", year, want, got)
		}
	}
}

func TestVestedInYearNeverNegative(t *testing.T) {
	// A grant issued a year after the offer start has nothing vested in
	// offer year 1.
	s := model.VestingSchedule{CliffMonths: 0, DurationMonths: 12, Frequency: model.FrequencyMonthly}
	offerStart := mustDate(t, "2025-01-15")
	grantStart := mustDate(t, "2026-01-15")

	if got := VestedInYear(s, grantStart, 1, offerStart); !got.IsZero() {
		t.Fatalf("expected 0 for a grant issued after year 1, got %s", got)
	}
}
