package handler

import (
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"comp-engine/internal/benchmarks"
	"comp-engine/internal/engine"
	"comp-engine/internal/model"
	"comp-engine/internal/scenarios"
)

const (
	defaultProjectionYears = 4
	maxProjectionYears     = 50
	maxOffersPerComparison = 10
)

// Route dispatches all API endpoints.
func Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "healthy", "service": "comp-engine"})
	case "/compare":
		post(ctx, handleCompare)
	case "/scenario":
		post(ctx, handleScenario)
	case "/scenario/multiple":
		post(ctx, handleMultiScenario)
	case "/benchmarks":
		handleBenchmarks(ctx)
	case "/benchmarks/roles":
		writeList(ctx, benchmarks.Roles)
	case "/benchmarks/levels":
		writeList(ctx, benchmarks.Levels)
	case "/benchmarks/locations":
		writeList(ctx, benchmarks.Locations)
	case "/benchmarks/summary":
		handleBenchmarkSummary(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func post(ctx *fasthttp.RequestCtx, h func(*fasthttp.RequestCtx)) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h(ctx)
}

func handleCompare(ctx *fasthttp.RequestCtx) {
	started := time.Now()

	var req model.ComparisonRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Offers) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one offer is required")
		return
	}
	if len(req.Offers) > maxOffersPerComparison {
		writeError(ctx, fasthttp.StatusBadRequest, "Maximum 10 offers can be compared at once")
		return
	}
	horizon, ok := resolveHorizon(ctx, req.ProjectionYears)
	if !ok {
		return
	}

	reports := make([]model.OfferReport, 0, len(req.Offers))
	for i := range req.Offers {
		projection, err := engine.Project(&req.Offers[i], horizon)
		if err != nil {
			writeEngineError(ctx, err)
			return
		}
		report := model.OfferReport{
			Projection: roundProjection(projection),
			TotalValue: engine.TotalValue(projection).Round(2),
			Breakdown:  roundBreakdown(engine.Breakdown(projection)),
		}
		if cagr, err := engine.CAGR(projection); err == nil {
			rounded := cagr.Round(6)
			report.CAGR = &rounded
		}
		if req.TaxState != "" {
			y1 := projection.Years[0]
			tax := engine.EstimateTax(y1.BaseSalary, y1.Bonus, y1.EquityValue, req.TaxState).Round(2)
			report.EstimatedTaxYear1 = &tax
		}
		reports = append(reports, report)
	}

	writeJSON(ctx, fasthttp.StatusOK, model.ComparisonResponse{
		CalculationMetadata: newMetadata(started),
		Offers:              reports,
	})
}

func handleScenario(ctx *fasthttp.RequestCtx) {
	started := time.Now()

	var req model.ScenarioRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	horizon, ok := resolveHorizon(ctx, req.ProjectionYears)
	if !ok {
		return
	}

	result, err := scenarios.Run(&req.Offer, &req.Scenario, horizon)
	if err != nil {
		writeEngineError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, model.ScenarioResponse{
		CalculationMetadata: newMetadata(started),
		Result:              roundResult(result),
	})
}

func handleMultiScenario(ctx *fasthttp.RequestCtx) {
	started := time.Now()

	var req model.MultiScenarioRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	horizon, ok := resolveHorizon(ctx, req.ProjectionYears)
	if !ok {
		return
	}

	results, err := scenarios.RunMultiple(&req.Offer, req.Scenarios, horizon)
	if err != nil {
		writeEngineError(ctx, err)
		return
	}
	rounded := make([]model.ScenarioResult, 0, len(results))
	for i := range results {
		rounded = append(rounded, roundResult(&results[i]))
	}

	writeJSON(ctx, fasthttp.StatusOK, model.MultiScenarioResponse{
		CalculationMetadata: newMetadata(started),
		Results:             rounded,
	})
}

func handleBenchmarks(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	rows, err := benchmarks.Filter(string(args.Peek("role")), string(args.Peek("level")), string(args.Peek("location")))
	if err != nil {
		log.Errorf("Benchmark dataset unavailable: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Error loading benchmark data")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, rows)
}

func handleBenchmarkSummary(ctx *fasthttp.RequestCtx) {
	summary, err := benchmarks.Summary()
	if err != nil {
		log.Errorf("Benchmark dataset unavailable: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Error loading benchmark data")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, summary)
}

func writeList(ctx *fasthttp.RequestCtx, list func() ([]string, error)) {
	values, err := list()
	if err != nil {
		log.Errorf("Benchmark dataset unavailable: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Error loading benchmark data")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, values)
}

func resolveHorizon(ctx *fasthttp.RequestCtx, years int) (int, bool) {
	if years == 0 {
		return defaultProjectionYears, true
	}
	if years < 1 || years > maxProjectionYears {
		writeError(ctx, fasthttp.StatusBadRequest, "projection_years must be between 1 and 50")
		return 0, false
	}
	return years, true
}

func newMetadata(started time.Time) model.CalculationMetadata {
	completed := time.Now().UTC()
	elapsed := completed.Sub(started)
	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   completed.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: completed.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     model.OutcomeSuccess,
	}
}

// Monetary values stay exact inside the engine; rounding to the currency
// minor unit happens here, at the presentation boundary. Totals are
// recomputed from the rounded components so the base+bonus+equity=total
// property survives rounding.
func roundProjection(p *model.OfferProjection) model.OfferProjection {
	out := model.OfferProjection{OfferName: p.OfferName, Years: make([]model.YearlyProjection, 0, len(p.Years))}
	for _, y := range p.Years {
		base := y.BaseSalary.Round(2)
		bonus := y.Bonus.Round(2)
		equity := y.EquityValue.Round(2)
		out.Years = append(out.Years, model.YearlyProjection{
			Year:        y.Year,
			BaseSalary:  base,
			Bonus:       bonus,
			EquityValue: equity,
			Total:       base.Add(bonus).Add(equity),
		})
	}
	return out
}

func roundBreakdown(b model.BreakdownPercentages) model.BreakdownPercentages {
	return model.BreakdownPercentages{
		Base:   b.Base.Round(2),
		Bonus:  b.Bonus.Round(2),
		Equity: b.Equity.Round(2),
	}
}

func roundResult(r *model.ScenarioResult) model.ScenarioResult {
	out := *r
	out.Projection = roundProjection(&r.Projection)
	if r.CAGR != nil {
		c := r.CAGR.Round(6)
		out.CAGR = &c
	}
	if r.Impact != nil {
		impact := model.ScenarioImpact{
			TotalDifference:   r.Impact.TotalDifference.Round(2),
			PercentageChange:  r.Impact.PercentageChange.Round(2),
			YearlyDifferences: make([]model.YearlyDifference, 0, len(r.Impact.YearlyDifferences)),
		}
		for _, d := range r.Impact.YearlyDifferences {
			impact.YearlyDifferences = append(impact.YearlyDifferences, model.YearlyDifference{
				Year:             d.Year,
				Difference:       d.Difference.Round(2),
				PercentageChange: d.PercentageChange.Round(2),
			})
		}
		out.Impact = &impact
	}
	return out
}

func writeEngineError(ctx *fasthttp.RequestCtx, err error) {
	var offerErr *engine.InvalidOfferError
	var scenarioErr *engine.InvalidScenarioError
	var dataErr *engine.InsufficientDataError
	switch {
	case errors.As(err, &offerErr), errors.As(err, &scenarioErr):
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
	case errors.As(err, &dataErr):
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
	default:
		log.Errorf("Calculation failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("Response encoding failed: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
