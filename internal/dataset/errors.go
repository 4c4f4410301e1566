package dataset

import "github.com/pkg/errors"

var (
	// ErrFileNotFound means the CSV does not exist at the configured path.
	// Fatal at startup; surfaced by the API as an error state afterwards.
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrMalformedData means the CSV could not be parsed or lacks one of the
	// required columns (event_id, event_timestamp, event_type).
	ErrMalformedData = errors.New("dataset is malformed")

	// ErrNotLoaded means no dataset has been loaded into the store yet.
	ErrNotLoaded = errors.New("dataset not loaded")
)
