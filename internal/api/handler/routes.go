package handler

import (
	"net/http"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/api/handler/router"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/usecases/aggregating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service aggregating.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/events",
			Method:  http.MethodGet,
			Handler: GetEvents(service),
		},
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/kpis/series",
			Method:  http.MethodGet,
			Handler: GetDailySeries(service),
		},
		{
			Path:    "/v1/insights/conversion-trend",
			Method:  http.MethodGet,
			Handler: GetConversionTrend(service),
		},
		{
			Path:    "/v1/insights/crossovers",
			Method:  http.MethodGet,
			Handler: GetCrossoverInsights(service),
		},
		{
			Path:    "/v1/insights/link-clicks",
			Method:  http.MethodGet,
			Handler: GetLinkClickInsights(service),
		},
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Charts(service aggregating.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/conversion-trend.png",
			Method:  http.MethodGet,
			Handler: ConversionTrendChart(service),
		},
		{
			Path:    "/v1/charts/crossovers-by-browser.png",
			Method:  http.MethodGet,
			Handler: CrossoversByBrowserChart(service),
		},
		{
			Path:    "/v1/charts/link-clicks-by-destination.png",
			Method:  http.MethodGet,
			Handler: LinkClicksByDestinationChart(service),
		},
	}
}

func DatasetRoutes(services DatasetServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(services),
		},
		{
			Path:    "/v1/dataset/refresh",
			Method:  http.MethodPost,
			Handler: RunDatasetRefresh(services),
		},
	}
}
