package errors

import (
	stderrors "errors"
	"fmt"
)

// Failure taxonomy of the energy core. Callers classify with errors.Is.
var (
	// ErrInvalidReading fails fast, before any I/O.
	ErrInvalidReading = stderrors.New("invalid reading")

	// ErrStorageUnavailable is transient; the caller may retry.
	ErrStorageUnavailable = stderrors.New("storage unavailable")

	// ErrStorageRejected means the store refused a malformed write. Not retryable as-is.
	ErrStorageRejected = stderrors.New("storage rejected write")
)

// InvalidReadingf wraps ErrInvalidReading with a formatted detail.
func InvalidReadingf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidReading, fmt.Sprintf(format, args...))
}

const (
	HttpInternalError           = "internal_error"
	HttpInvalidJsonError        = "invalid_json"
	HttpInvalidReadingError     = "invalid_reading"
	HttpInvalidQueryError       = "invalid_query"
	HttpSensorNotFoundError     = "sensor_not_found"
	HttpNotFoundError           = "not_found"
	HttpStorageUnavailableError = "storage_unavailable"
	HttpStorageRejectedError    = "storage_rejected"
	HttpServiceClosingError     = "service_closing"
	HttpQueueFullError          = "queue_full"
)

// ErrorResponse is the error response body shared by every HTTP handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
