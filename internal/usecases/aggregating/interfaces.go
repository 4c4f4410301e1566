package aggregating

import (
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
)

// Aggregator is the core pipeline contract: apply filter criteria to a
// dataset snapshot and derive the KPI result. Pure function of its inputs.
type Aggregator interface {
	// Apply returns the filtered row subset and the scalar KPIs for it.
	// It never fails on a loaded dataset; an empty view is a valid outcome
	// with zero-valued KPIs.
	Apply(ds *dataset.Dataset, filters *domain.EventFilters) (*domain.FilteredView, *domain.KPISummary)
}

// Insighter is the surface the HTTP handlers consume. Every method resolves
// the current dataset snapshot, runs the pipeline, and shapes the response
// for one dashboard view. Errors only occur when no dataset is loaded.
type Insighter interface {
	Aggregator

	// Events returns the filtered row subset.
	Events(filters *domain.EventFilters) (*domain.EventsResponse, error)

	// KPIs returns the tile values for the active filters.
	KPIs(filters *domain.EventFilters) (*domain.KPIResponse, error)

	// DailySeries returns the per-event-type daily trend series.
	DailySeries(filters *domain.EventFilters) (*domain.SeriesResponse, error)

	// ConversionTrend returns the monthly crossover/link-click overlay data.
	ConversionTrend(filters *domain.EventFilters) (*domain.ConversionTrendResponse, error)

	// CrossoverInsights returns the website crossovers tab data.
	CrossoverInsights(filters *domain.EventFilters) (*domain.CrossoverInsightsResponse, error)

	// LinkClickInsights returns the link clicks tab data.
	LinkClickInsights(filters *domain.EventFilters) (*domain.LinkClickInsightsResponse, error)

	// FilterOptions returns the choices for the frontend's filter widgets.
	FilterOptions() (*domain.FilterOptionsResponse, error)
}
