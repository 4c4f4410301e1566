package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
)

type stubProvider struct {
	ds  *dataset.Dataset
	err error
}

func (p *stubProvider) Current() (*dataset.Dataset, error) {
	return p.ds, p.err
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		SnapshotID: "snap01",
		Events: []domain.Event{
			{EventID: "e1", EventType: domain.EventTypeCrossover, EventDate: day(2024, 1, 1), UserID: "u1", Browser: "Chrome"},
			{EventID: "e2", EventType: domain.EventTypeLinkClick, EventDate: day(2024, 1, 1), UserID: "u1", ProgramDestination: domain.DestinationKansas},
			{EventID: "e3", EventType: domain.EventTypeLinkClick, EventDate: day(2024, 1, 2), UserID: "u2", ProgramDestination: domain.DestinationVirta},
			{EventID: "e4", EventType: domain.EventTypeSignup, EventDate: day(2024, 1, 3), UserID: "u2"},
			{EventID: "e5", EventType: "pageview", EventDate: day(2024, 2, 1), UserID: "u3", Browser: "Safari"},
			{EventID: "e6", EventType: domain.EventTypeCrossover, EventDate: day(2024, 2, 2), UserID: "u3", Browser: "Safari"},
		},
	}
}

func TestApply_SpecScenario(t *testing.T) {
	// Dataset: one crossover and one click on Jan 1, one click on Jan 2.
	// Filtering to Jan 1 only must yield one of each and a conversion of 1.
	ds := &dataset.Dataset{
		Events: []domain.Event{
			{EventType: domain.EventTypeCrossover, EventDate: day(2024, 1, 1)},
			{EventType: domain.EventTypeLinkClick, EventDate: day(2024, 1, 1)},
			{EventType: domain.EventTypeLinkClick, EventDate: day(2024, 1, 2)},
		},
	}
	service := NewService(&stubProvider{ds: ds})

	filters := &domain.EventFilters{
		StartDate: datePtr(day(2024, 1, 1)),
		EndDate:   datePtr(day(2024, 1, 1)),
	}

	view, kpis := service.Apply(ds, filters)

	assert.Equal(t, 1, kpis.CrossoverCount)
	assert.Equal(t, 1, kpis.LinkClickCount)
	assert.Equal(t, 1.0, kpis.ClickConversionRate)

	series := view.SeriesByType()
	require.Len(t, series[domain.EventTypeLinkClick], 1)
	assert.Equal(t, day(2024, 1, 1), series[domain.EventTypeLinkClick][0].Date)
	assert.Equal(t, 1, series[domain.EventTypeLinkClick][0].Count)
}

func TestApply_CountRoundTrip(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	tests := []struct {
		name    string
		filters *domain.EventFilters
	}{
		{name: "unconstrained", filters: &domain.EventFilters{}},
		{name: "january only", filters: &domain.EventFilters{
			StartDate: datePtr(day(2024, 1, 1)),
			EndDate:   datePtr(day(2024, 1, 31)),
		}},
		{name: "chrome only", filters: &domain.EventFilters{Browser: strPtr("Chrome")}},
		{name: "excludes everything", filters: &domain.EventFilters{
			StartDate: datePtr(day(2030, 1, 1)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, kpis := service.Apply(ds, tt.filters)

			sum := kpis.CrossoverCount + kpis.LinkClickCount + kpis.SignupCount +
				kpis.ImprovementCount + kpis.OtherCount
			assert.Equal(t, view.Len(), sum)
			assert.Equal(t, view.Len(), kpis.TotalCount)
		})
	}
}

func TestApply_ZeroDivisionSafety(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	// Only link clicks in range, zero crossovers.
	filters := &domain.EventFilters{
		StartDate: datePtr(day(2024, 1, 2)),
		EndDate:   datePtr(day(2024, 1, 2)),
	}

	_, kpis := service.Apply(ds, filters)

	assert.Equal(t, 0, kpis.CrossoverCount)
	assert.Equal(t, 1, kpis.LinkClickCount)
	assert.Equal(t, 0.0, kpis.ClickConversionRate)
}

func TestApply_FilterMonotonicity(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	wide := &domain.EventFilters{
		StartDate: datePtr(day(2024, 1, 1)),
		EndDate:   datePtr(day(2024, 2, 28)),
	}
	narrow := &domain.EventFilters{
		StartDate: datePtr(day(2024, 1, 1)),
		EndDate:   datePtr(day(2024, 1, 31)),
	}

	_, wideKPIs := service.Apply(ds, wide)
	_, narrowKPIs := service.Apply(ds, narrow)

	assert.LessOrEqual(t, narrowKPIs.CrossoverCount, wideKPIs.CrossoverCount)
	assert.LessOrEqual(t, narrowKPIs.LinkClickCount, wideKPIs.LinkClickCount)
}

func TestApply_Idempotence(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	filters := &domain.EventFilters{
		StartDate: datePtr(day(2024, 1, 1)),
		EndDate:   datePtr(day(2024, 2, 28)),
		Browser:   strPtr("Safari"),
	}

	view1, kpis1 := service.Apply(ds, filters)
	view2, kpis2 := service.Apply(ds, filters)

	assert.Equal(t, kpis1, kpis2)
	assert.Equal(t, view1.Events, view2.Events)
	assert.Equal(t, view1.ConversionTrend(), view2.ConversionTrend())
}

func TestApply_BoundaryInclusivity(t *testing.T) {
	ds := &dataset.Dataset{
		Events: []domain.Event{
			{EventID: "before", EventType: domain.EventTypeCrossover, EventDate: day(2024, 1, 9)},
			{EventID: "from", EventType: domain.EventTypeCrossover, EventDate: day(2024, 1, 10)},
			{EventID: "to", EventType: domain.EventTypeCrossover, EventDate: day(2024, 1, 20)},
			{EventID: "after", EventType: domain.EventTypeCrossover, EventDate: day(2024, 1, 21)},
		},
	}
	service := NewService(&stubProvider{ds: ds})

	filters := &domain.EventFilters{
		StartDate: datePtr(day(2024, 1, 10)),
		EndDate:   datePtr(day(2024, 1, 20)),
	}

	view, kpis := service.Apply(ds, filters)

	assert.Equal(t, 2, kpis.CrossoverCount)
	ids := []string{view.Events[0].EventID, view.Events[1].EventID}
	assert.ElementsMatch(t, []string{"from", "to"}, ids)
}

func TestApply_BrowserFilterIsCaseSensitive(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	_, kpis := service.Apply(ds, &domain.EventFilters{Browser: strPtr("chrome")})
	assert.Equal(t, 0, kpis.TotalCount)

	_, kpis = service.Apply(ds, &domain.EventFilters{Browser: strPtr("Chrome")})
	assert.Equal(t, 1, kpis.TotalCount)
}

func TestService_KPIs(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	response, err := service.KPIs(&domain.EventFilters{})

	require.NoError(t, err)
	assert.Equal(t, "snap01", response.SnapshotID)
	assert.Equal(t, 2, response.KPIs.CrossoverCount)
	assert.Equal(t, 2, response.KPIs.LinkClickCount)
	assert.Equal(t, 1.0, response.KPIs.ClickConversionRate)
	assert.Equal(t, 1, response.KPIs.OtherCount)
}

func TestService_ErrorsWhenDatasetNotLoaded(t *testing.T) {
	service := NewService(&stubProvider{err: dataset.ErrNotLoaded})

	_, err := service.KPIs(&domain.EventFilters{})
	assert.ErrorIs(t, err, dataset.ErrNotLoaded)

	_, err = service.FilterOptions()
	assert.ErrorIs(t, err, dataset.ErrNotLoaded)
}

func TestService_FilterOptions(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	response, err := service.FilterOptions()

	require.NoError(t, err)
	assert.Equal(t, []string{"Chrome", "Safari"}, response.Browsers)
	require.NotNil(t, response.MinDate)
	require.NotNil(t, response.MaxDate)
	assert.Equal(t, day(2024, 1, 1), *response.MinDate)
	assert.Equal(t, day(2024, 2, 2), *response.MaxDate)
	assert.Equal(t, 6, response.TotalEvents)
}

func TestService_LinkClickInsights(t *testing.T) {
	ds := testDataset()
	service := NewService(&stubProvider{ds: ds})

	response, err := service.LinkClickInsights(&domain.EventFilters{})

	require.NoError(t, err)
	assert.Len(t, response.MonthlyByDestination, 2)
	require.Len(t, response.ByDestination, 2)
	// Equal counts fall back to name order.
	assert.Equal(t, domain.DestinationKansas, response.ByDestination[0].Destination)
	assert.Equal(t, domain.DestinationVirta, response.ByDestination[1].Destination)
}

func strPtr(s string) *string { return &s }
