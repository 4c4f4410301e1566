package handler

import (
	"net/http"
	"time"

	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/scheduler"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/apiErrors"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/log"
)

// DatasetServices bundles the dependencies of the dataset admin endpoints.
type DatasetServices struct {
	Store   dataset.Provider
	Refresh *scheduler.DatasetRefreshService
}

type datasetStatusResponse struct {
	SnapshotID    string                   `json:"snapshot_id,omitempty"`
	Rows          int                      `json:"rows"`
	DroppedRows   int                      `json:"dropped_rows"`
	LoadedAt      *time.Time               `json:"loaded_at,omitempty"`
	SourcePath    string                   `json:"source_path,omitempty"`
	SourceModTime *time.Time               `json:"source_mod_time,omitempty"`
	Loaded        bool                     `json:"loaded"`
	Refresh       *scheduler.RefreshStatus `json:"refresh,omitempty"`
}

func GetDatasetStatus(services DatasetServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := datasetStatusResponse{}

		if services.Refresh != nil {
			status := services.Refresh.Status()
			response.Refresh = &status
		}

		ds, err := services.Store.Current()
		if err == nil {
			response.Loaded = true
			response.SnapshotID = ds.SnapshotID
			response.Rows = ds.Len()
			response.DroppedRows = ds.DroppedRows
			response.LoadedAt = &ds.LoadedAt
			response.SourcePath = ds.SourcePath
			response.SourceModTime = &ds.SourceModTime
		}

		writeJSON(w, r, response)
	})
}

func RunDatasetRefresh(services DatasetServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("dataset: manual refresh requested")

		if err := services.Refresh.RunNow(); err != nil {
			logger.WithField("error", err.Error()).Warn("dataset: manual refresh rejected")
			apiErrors.WriteError(w, apiErrors.ErrRefreshConflict, err.Error(), nil)
			return
		}

		status := services.Refresh.Status()
		writeJSON(w, r, status)
	})
}
