package handler

import (
	"net/http"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/usecases/aggregating"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/apiErrors"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/log"
)

// Brand palette carried over from the dashboard frontend.
var (
	brandPrimary   = drawing.ColorFromHex("436DB3")
	brandLightBlue = drawing.ColorFromHex("BFD0EE")
	brandDanger    = drawing.ColorFromHex("F4454E")
	brandGray      = drawing.ColorFromHex("87A9DA")

	brandBlues = []drawing.Color{
		drawing.ColorFromHex("436DB3"),
		drawing.ColorFromHex("5B84C7"),
		drawing.ColorFromHex("87A9DA"),
		drawing.ColorFromHex("AFC5E8"),
		drawing.ColorFromHex("D3E1F5"),
	}
)

const (
	chartWidth  = 900
	chartHeight = 380
)

func lineStyle(color drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: color,
		StrokeWidth: 2.6,
	}
}

// padTimeSeries duplicates a lone point one day out; the renderer needs at
// least two X values per series.
func padTimeSeries(times []time.Time, values []float64) ([]time.Time, []float64) {
	if len(times) != 1 {
		return times, values
	}
	return append(times, times[0].Add(24*time.Hour)), append(values, values[0])
}

func renderChart(w http.ResponseWriter, r *http.Request, graph *chart.Chart) {
	graph.Elements = []chart.Renderable{chart.Legend(graph)}

	w.Header().Set("Content-Type", chart.ContentTypePNG)
	if err := graph.Render(chart.PNG, w); err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":  r.URL.Path,
			"error": err.Error(),
		}).Error("charts: render failed")

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

// ConversionTrendChart renders the executive overview overlay: monthly
// crossover and link-click unique users with the conversion percentage on a
// secondary axis.
func ConversionTrendChart(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)
			return
		}

		response, err := service.ConversionTrend(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if len(response.Trend) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		months := make([]time.Time, 0, len(response.Trend))
		crossovers := make([]float64, 0, len(response.Trend))
		linkClicks := make([]float64, 0, len(response.Trend))
		conversion := make([]float64, 0, len(response.Trend))
		for _, point := range response.Trend {
			months = append(months, point.Month)
			crossovers = append(crossovers, float64(point.Crossovers))
			linkClicks = append(linkClicks, float64(point.LinkClicks))
			conversion = append(conversion, point.ConversionPct)
		}

		crossoverMonths, crossovers := padTimeSeries(months, crossovers)
		linkClickMonths, linkClicks := padTimeSeries(months, linkClicks)
		conversionMonths, conversion := padTimeSeries(months, conversion)

		graph := chart.Chart{
			Title:  "Conversion Trend",
			Width:  chartWidth,
			Height: chartHeight,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2006"),
			},
			YAxis: chart.YAxis{
				Name: "Unique Users",
			},
			YAxisSecondary: chart.YAxis{
				Name: "% Conversion",
			},
			Series: []chart.Series{
				chart.TimeSeries{
					Name:    "Website Crossovers",
					XValues: crossoverMonths,
					YValues: crossovers,
					Style:   lineStyle(brandLightBlue),
				},
				chart.TimeSeries{
					Name:    "Link Clicks",
					XValues: linkClickMonths,
					YValues: linkClicks,
					Style:   lineStyle(brandPrimary),
				},
				chart.TimeSeries{
					Name:    "Click Conversion",
					XValues: conversionMonths,
					YValues: conversion,
					YAxis:   chart.YAxisSecondary,
					Style:   lineStyle(brandDanger),
				},
			},
		}

		renderChart(w, r, &graph)
	})
}

// CrossoversByBrowserChart renders the crossovers-by-browser donut.
func CrossoversByBrowserChart(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)
			return
		}

		response, err := service.CrossoverInsights(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if len(response.ByBrowser) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		values := make([]chart.Value, 0, len(response.ByBrowser))
		for i, slice := range response.ByBrowser {
			values = append(values, chart.Value{
				Label: slice.Browser,
				Value: float64(slice.UniqueUsers),
				Style: chart.Style{
					FillColor: brandBlues[i%len(brandBlues)],
				},
			})
		}

		donut := chart.DonutChart{
			Title:  "Crossovers by Browser",
			Width:  chartHeight,
			Height: chartHeight,
			Values: values,
		}

		w.Header().Set("Content-Type", chart.ContentTypePNG)
		if err := donut.Render(chart.PNG, w); err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"path":  r.URL.Path,
				"error": err.Error(),
			}).Error("charts: render failed")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// LinkClicksByDestinationChart renders monthly link-click unique users as one
// line per program destination.
func LinkClicksByDestinationChart(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)
			return
		}

		response, err := service.LinkClickInsights(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if len(response.MonthlyByDestination) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		destinations := make([]string, 0, len(response.MonthlyByDestination))
		for destination := range response.MonthlyByDestination {
			destinations = append(destinations, destination)
		}
		sort.Strings(destinations)

		series := make([]chart.Series, 0, len(destinations))
		for _, destination := range destinations {
			monthly := response.MonthlyByDestination[destination]

			months := make([]time.Time, 0, len(monthly))
			counts := make([]float64, 0, len(monthly))
			for _, point := range monthly {
				months = append(months, point.Month)
				counts = append(counts, float64(point.UniqueUsers))
			}
			months, counts = padTimeSeries(months, counts)

			series = append(series, chart.TimeSeries{
				Name:    destination,
				XValues: months,
				YValues: counts,
				Style:   lineStyle(destinationColor(destination)),
			})
		}

		graph := chart.Chart{
			Title:  "Link Clicks Trends",
			Width:  chartWidth,
			Height: chartHeight,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2006"),
			},
			YAxis: chart.YAxis{
				Name: "Unique Users",
			},
			Series: series,
		}

		renderChart(w, r, &graph)
	})
}

// destinationColor keeps the frontend's color conventions for the known
// program destinations.
func destinationColor(destination string) drawing.Color {
	switch destination {
	case domain.DestinationKansas:
		return brandPrimary
	case domain.DestinationVirta:
		return brandDanger
	default:
		return brandGray
	}
}
