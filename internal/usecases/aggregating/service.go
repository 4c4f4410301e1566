package aggregating

import (
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
)

// Service implements Insighter on top of a dataset provider.
type Service struct {
	datasets dataset.Provider
}

// NewService creates the aggregation service.
func NewService(datasets dataset.Provider) *Service {
	return &Service{datasets: datasets}
}

// Apply filters the dataset and summarizes the result. Pure: it reads the
// snapshot, allocates the view, and touches nothing else, so identical
// inputs always produce identical output.
func (s *Service) Apply(ds *dataset.Dataset, filters *domain.EventFilters) (*domain.FilteredView, *domain.KPISummary) {
	view := &domain.FilteredView{
		Events:  make([]domain.Event, 0, ds.Len()),
		Filters: filters,
	}

	for i := range ds.Events {
		if filters.Matches(&ds.Events[i]) {
			view.Events = append(view.Events, ds.Events[i])
		}
	}

	return view, summarize(view)
}

func summarize(view *domain.FilteredView) *domain.KPISummary {
	summary := &domain.KPISummary{TotalCount: view.Len()}

	for i := range view.Events {
		switch view.Events[i].EventType {
		case domain.EventTypeCrossover:
			summary.CrossoverCount++
		case domain.EventTypeLinkClick:
			summary.LinkClickCount++
		case domain.EventTypeSignup:
			summary.SignupCount++
		case domain.EventTypeImprovement:
			summary.ImprovementCount++
		default:
			summary.OtherCount++
		}
	}

	if summary.CrossoverCount > 0 {
		summary.ClickConversionRate = float64(summary.LinkClickCount) / float64(summary.CrossoverCount)
	}

	return summary
}

// Events implements Insighter.
func (s *Service) Events(filters *domain.EventFilters) (*domain.EventsResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	view, _ := s.Apply(ds, filters)

	return &domain.EventsResponse{
		SnapshotID:  ds.SnapshotID,
		Filters:     filters,
		Total:       view.Len(),
		DroppedRows: ds.DroppedRows,
		Events:      view.Events,
	}, nil
}

// KPIs implements Insighter.
func (s *Service) KPIs(filters *domain.EventFilters) (*domain.KPIResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	_, kpis := s.Apply(ds, filters)

	return &domain.KPIResponse{
		SnapshotID: ds.SnapshotID,
		Filters:    filters,
		KPIs:       kpis,
	}, nil
}

// DailySeries implements Insighter.
func (s *Service) DailySeries(filters *domain.EventFilters) (*domain.SeriesResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	view, _ := s.Apply(ds, filters)

	return &domain.SeriesResponse{
		Filters: filters,
		Series:  view.SeriesByType(),
	}, nil
}

// ConversionTrend implements Insighter.
func (s *Service) ConversionTrend(filters *domain.EventFilters) (*domain.ConversionTrendResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	view, _ := s.Apply(ds, filters)

	return &domain.ConversionTrendResponse{
		Filters: filters,
		Trend:   view.ConversionTrend(),
	}, nil
}

// CrossoverInsights implements Insighter.
func (s *Service) CrossoverInsights(filters *domain.EventFilters) (*domain.CrossoverInsightsResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	view, _ := s.Apply(ds, filters)

	return &domain.CrossoverInsightsResponse{
		Filters:   filters,
		Monthly:   view.MonthlyUniqueUsers(domain.EventTypeCrossover),
		ByBrowser: view.CrossoversByBrowser(),
	}, nil
}

// LinkClickInsights implements Insighter.
func (s *Service) LinkClickInsights(filters *domain.EventFilters) (*domain.LinkClickInsightsResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	view, _ := s.Apply(ds, filters)

	return &domain.LinkClickInsightsResponse{
		Filters:              filters,
		MonthlyByDestination: view.MonthlyByDestination(),
		ByDestination:        view.LinkClicksByDestination(),
	}, nil
}

// FilterOptions implements Insighter.
func (s *Service) FilterOptions() (*domain.FilterOptionsResponse, error) {
	ds, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	response := &domain.FilterOptionsResponse{
		Browsers:    ds.Browsers(),
		TotalEvents: ds.Len(),
	}

	if min, max, ok := ds.DateRange(); ok {
		response.MinDate = &min
		response.MaxDate = &max
	}

	return response, nil
}
