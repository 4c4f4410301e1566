package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the frontend.
const (
	// Dataset errors (DATA_*)
	ErrDatasetNotFound  = "DATA_001" // CSV missing at the configured path
	ErrDatasetMalformed = "DATA_002" // CSV unparsable or missing required columns
	ErrDatasetNotLoaded = "DATA_003" // no snapshot loaded yet

	// Validation errors (VAL_*)
	ErrInvalidRequest = "VAL_001" // request invalid
	ErrInvalidDate    = "VAL_002" // date parameter not in YYYY-MM-DD form

	// Server errors (SRV_*)
	ErrInternalServer  = "SRV_001" // unexpected server fault
	ErrRefreshConflict = "SRV_002" // dataset refresh already in flight
)

var httpStatusMap = map[string]int{
	ErrDatasetNotFound:  http.StatusServiceUnavailable,
	ErrDatasetMalformed: http.StatusServiceUnavailable,
	ErrDatasetNotLoaded: http.StatusServiceUnavailable,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidDate:      http.StatusBadRequest,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrRefreshConflict:  http.StatusConflict,
}

// APIError is the standardized error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
