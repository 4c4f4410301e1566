package handler

import (
	"net/http"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/usecases/aggregating"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/apiErrors"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/log"
)

func GetEvents(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("events: invalid filter parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)
			return
		}

		response, err := service.Events(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"total": response.Total,
		}).Debug("events: filtered view computed")

		writeJSON(w, r, response)
	})
}

func GetKPIs(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("kpis: invalid filter parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)
			return
		}

		response, err := service.KPIs(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, response)
	})
}

func GetDailySeries(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)
			return
		}

		response, err := service.DailySeries(filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, response)
	})
}

func GetConversionTrend(service aggregating.Insighter) http.Handler {
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

		writeJSON(w, r, response)
	})
}

func GetCrossoverInsights(service aggregating.Insighter) http.Handler {
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

		writeJSON(w, r, response)
	})
}

func GetLinkClickInsights(service aggregating.Insighter) http.Handler {
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

		writeJSON(w, r, response)
	})
}

func GetFilterOptions(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := service.FilterOptions()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, response)
	})
}
