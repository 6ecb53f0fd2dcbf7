package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	httperr "github.com/Schnee111/smart-city-monitoring-system/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed     = "Failed to read request body"
	msgInvalidJSON        = "Invalid JSON body"
	msgSensorNotFound     = "Sensor not found"
	msgRegistryFailed     = "Failed to look up sensor"
	msgStorageUnavailable = "Storage temporarily unavailable, retry later"
	msgStorageRejected    = "Storage rejected the reading"
	msgPersistFailed      = "Failed to persist reading"
	msgServiceClosing     = "Service is shutting down"
	msgQueueFull          = "Ingest queue is full, retry later"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler persists a reading synchronously and answers 201 with the stored record.
func (s *Service) IngestHandler(c *gin.Context) {
	reading, ierr := s.prepare(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	pending, err := s.writer.Submit(c.Request.Context(), reading, ModeSync)
	if err != nil {
		writeError(c, classifyWriteError(err, reading))
		return
	}

	stored, err := pending.Wait(c.Request.Context())
	if err != nil {
		writeError(c, classifyWriteError(err, reading))
		return
	}

	c.JSON(http.StatusCreated, v1.NewReadingResponse(stored))
}

// IngestAsyncHandler queues a reading and answers 202 without waiting for the write.
func (s *Service) IngestAsyncHandler(c *gin.Context) {
	reading, ierr := s.prepare(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	pending, err := s.writer.Submit(c.Request.Context(), reading, ModeAsync)
	if err != nil {
		writeError(c, classifyWriteError(err, reading))
		return
	}

	go logAsyncOutcome(pending, reading.SensorID)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// prepare parses the body, validates it and checks the sensor is registered.
func (s *Service) prepare(c *gin.Context) (v1.Reading, *ingestionError) {
	req, ierr := s.parseRequest(c)
	if ierr != nil {
		return v1.Reading{}, ierr
	}

	if err := req.Validate(); err != nil {
		slog.Warn("[Ingest] Request validation failed", "error", err, "sensor_id", req.SensorID)
		return v1.Reading{}, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidReadingError,
			message:    err.Error(),
		}
	}

	reading := req.Reading()
	if err := reading.Validate(); err != nil {
		return v1.Reading{}, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidReadingError,
			message:    err.Error(),
		}
	}

	if ierr := s.checkSensor(c.Request.Context(), req.SensorID); ierr != nil {
		return v1.Reading{}, ierr
	}

	return reading, nil
}

// parseRequest reads the raw request body and binds it into an IngestRequest.
func (s *Service) parseRequest(c *gin.Context) (*v1.IngestRequest, *ingestionError) {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingest] Failed to read request body", "error", err)
		return nil, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingest] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var req v1.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Ingest] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	return &req, nil
}

func (s *Service) checkSensor(ctx context.Context, sensorID string) *ingestionError {
	exists, err := s.registry.Exists(ctx, sensorID)
	if err != nil {
		slog.Error("[Ingest] Sensor registry lookup failed", "sensor_id", sensorID, "error", err)
		return &ingestionError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpStorageUnavailableError,
			message:    msgRegistryFailed,
		}
	}
	if !exists {
		return &ingestionError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpSensorNotFoundError,
			message:    msgSensorNotFound,
			details:    map[string]interface{}{"sensor_id": sensorID},
		}
	}
	return nil
}

// classifyWriteError maps the writer's error taxonomy onto HTTP statuses.
func classifyWriteError(err error, reading v1.Reading) *ingestionError {
	switch {
	case errors.Is(err, httperr.ErrInvalidReading):
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidReadingError,
			message:    err.Error(),
		}
	case errors.Is(err, httperr.ErrStorageRejected):
		return &ingestionError{
			statusCode: http.StatusUnprocessableEntity,
			errorType:  httperr.HttpStorageRejectedError,
			message:    msgStorageRejected,
		}
	case errors.Is(err, httperr.ErrStorageUnavailable):
		return &ingestionError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpStorageUnavailableError,
			message:    msgStorageUnavailable,
		}
	case errors.Is(err, ErrWriterClosed):
		return &ingestionError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpServiceClosingError,
			message:    msgServiceClosing,
		}
	case errors.Is(err, ErrQueueFull):
		slog.Warn("[Ingest] Async queue full, rejecting reading", "sensor_id", reading.SensorID)
		return &ingestionError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpQueueFullError,
			message:    msgQueueFull,
		}
	}

	slog.Error("[Ingest] Failed to persist reading", "error", err, "sensor_id", reading.SensorID)
	return &ingestionError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    msgPersistFailed,
	}
}

// logAsyncOutcome reports failed async writes; the HTTP caller is long gone.
func logAsyncOutcome(pending *Pending, sensorID string) {
	if _, err := pending.Wait(context.Background()); err != nil {
		slog.Error("[Ingest] Async write failed", "sensor_id", sensorID, "error", err)
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
