package scenarios

import "comp-engine/internal/model"

var registry = map[string]Handler{
	model.ScenarioNewStartDate:        &StartDateHandler{},
	model.ScenarioGrowthRateOverride:  &GrowthRateHandler{},
	model.ScenarioRefreshRateOverride: &RefreshRateHandler{},
	model.ScenarioExitValuation:       &ExitValuationHandler{},
}

func Get(kind string) (Handler, bool) {
	h, ok := registry[kind]
	return h, ok
}
