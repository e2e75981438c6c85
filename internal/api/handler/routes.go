package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-autopilot-api/internal/api/handler/router"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
	}
}

func Analysis(engine decisioning.DecisionEngine) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/decision-config/defaults",
			Method:  http.MethodGet,
			Handler: GetDecisionDefaults(engine),
		},
		{
			Path:    "/v1/adAccount/:id/analysis",
			Method:  http.MethodPost,
			Handler: AnalyzeAccount(engine),
		},
		{
			Path:    "/v1/adAccount/:id/analysis/latest",
			Method:  http.MethodGet,
			Handler: GetLatestAnalysis(engine),
		},
		{
			Path:    "/v1/adAccount/:id/analysis/execute",
			Method:  http.MethodPost,
			Handler: ExecuteAnalysis(engine),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
