package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/domain"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/apiErrors"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/log"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// browserAll is the dropdown's "no filter" sentinel, kept for compatibility
// with the original dashboard frontend.
const browserAll = "All"

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":  r.URL.Path,
			"error": err.Error(),
		}).Error("failed to encode response")

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode response", nil)
	}
}

// parseFilters builds the filter criteria from the query string: inclusive
// start_date/end_date bounds plus an optional exact browser selector.
func parseFilters(r *http.Request) (*domain.EventFilters, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid start_date")
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid end_date")
	}

	filters := &domain.EventFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if browser := query.Get("browser"); browser != "" && browser != browserAll {
		filters.Browser = &browser
	}

	return filters, nil
}

// writeServiceError maps pipeline errors onto the API error taxonomy.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"error": err.Error(),
	})

	switch {
	case errors.Is(err, dataset.ErrNotLoaded):
		logger.Warn("request before dataset load")
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "dataset not loaded yet", nil)
	case errors.Is(err, dataset.ErrFileNotFound):
		logger.Error("dataset file missing")
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)
	case errors.Is(err, dataset.ErrMalformedData):
		logger.Error("dataset malformed")
		apiErrors.WriteError(w, apiErrors.ErrDatasetMalformed, err.Error(), nil)
	default:
		logger.Error("request failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
