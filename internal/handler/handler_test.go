package handler

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"comp-engine/internal/model"
)

func serve(t *testing.T, method, uri string, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	Route(ctx)
	return ctx
}

const compareBody = `{
	"offers": [{
		"offer_name": "Acme L4",
		"base_salary": 180000,
		"signing_bonus": 25000,
		"bonus_percentage": 15,
		"start_date": "2025-01-15",
		"equity_grants": [{
			"type": "RSU",
			"value": 200000,
			"vesting_schedule": {"cliff_months": 12, "duration_months": 48, "frequency": "monthly"},
			"start_date": "2025-01-15",
			"growth_rate": 0.10,
			"refresh_rate": 25
		}]
	}],
	"projection_years": 4
}`

func TestCompareEndpoint(t *testing.T) {
	ctx := serve(t, "POST", "/compare", compareBody)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.ComparisonResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Offers) != 1 {
		t.Fatalf("expected 1 offer report, got %d", len(resp.Offers))
	}

	y1 := resp.Offers[0].Projection.Years[0]
	if !y1.Total.Equal(decimal.NewFromInt(232000)) {
		t.Fatalf("expected year 1 total 232000, got %s", y1.Total)
	}
	if !y1.EquityValue.IsZero() {
		t.Fatalf("expected year 1 equity 0 before the cliff, got %s", y1.EquityValue)
	}
	if resp.Offers[0].CAGR == nil {
		t.Fatal("expected a CAGR for a 4-year horizon")
	}
}

func TestCompareValidation(t *testing.T) {
	if ctx := serve(t, "POST", "/compare", `{"offers": []}`); ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400 for empty offers, got %d", ctx.Response.StatusCode())
	}
	if ctx := serve(t, "GET", "/compare", ""); ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET, got %d", ctx.Response.StatusCode())
	}
	if ctx := serve(t, "POST", "/compare", `{not json`); ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400 for bad JSON, got %d", ctx.Response.StatusCode())
	}

	invalid := `{"offers": [{"offer_name": "x", "base_salary": -1, "start_date": "2025-01-01"}]}`
	if ctx := serve(t, "POST", "/compare", invalid); ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400 for a negative salary, got %d", ctx.Response.StatusCode())
	}
}

func TestScenarioEndpoint(t *testing.T) {
	body := `{
		"offer": {
			"offer_name": "Base",
			"base_salary": 150000,
			"start_date": "2025-06-01",
			"equity_grants": [{
				"type": "RSU",
				"value": 80000,
				"vesting_schedule": {"cliff_months": 12, "duration_months": 48},
				"start_date": "2025-06-01",
				"growth_rate": 0.10
			}]
		},
		"scenario": {"kind": "growth_rate_override", "properties": {"growth_rate": 0}},
		"projection_years": 4
	}`
	ctx := serve(t, "POST", "/scenario", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.ScenarioResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if resp.Result.Kind != model.ScenarioGrowthRateOverride {
		t.Fatalf("unexpected scenario kind %s", resp.Result.Kind)
	}
	if !resp.Result.Projection.Years[1].EquityValue.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected 20000 year 2 equity, got %s", resp.Result.Projection.Years[1].EquityValue)
	}
}

func TestScenarioUnknownKind(t *testing.T) {
	body := `{
		"offer": {"offer_name": "Base", "base_salary": 150000, "start_date": "2025-06-01"},
		"scenario": {"kind": "salary_doubler", "properties": {}}
	}`
	if ctx := serve(t, "POST", "/scenario", body); ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown kind, got %d", ctx.Response.StatusCode())
	}
}

func TestBenchmarksEndpoint(t *testing.T) {
	ctx := serve(t, "GET", "/benchmarks?role=Software%20Engineer&level=L4&location=San%20Francisco", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	var rows []model.BenchmarkData
	if err := json.Unmarshal(ctx.Response.Body(), &rows); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 benchmark row, got %d", len(rows))
	}
}

func TestHealthAndNotFound(t *testing.T) {
	if ctx := serve(t, "GET", "/health", ""); ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200 for /health, got %d", ctx.Response.StatusCode())
	}
	if ctx := serve(t, "GET", "/nope", ""); ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}
