package projection

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/Schnee111/smart-city-monitoring-system/internal/api/v1"
	httperr "github.com/Schnee111/smart-city-monitoring-system/internal/core/errors"
	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	energy := r.Group("/v1/energy")
	energy.GET("/latest/:sensor_id", s.HandleLatest)
	energy.GET("/history/:sensor_id", s.HandleHistory)
	energy.GET("/daily/:sensor_id", s.HandleDailyTotal)

	stats := r.Group("/v1/stats")
	stats.GET("", s.HandleCityStats)
	stats.GET("/daily/:district", s.HandleDistrictStats)
	stats.POST("/rollup", s.HandleRollup)
	stats.GET("/districts", s.HandleDistricts)
	stats.GET("/districts/:district", s.HandleDistrict)
}

// HandleLatest handles GET /v1/energy/latest/:sensor_id
func (s *Service) HandleLatest(c *gin.Context) {
	sensorID, ok := bindSensorID(c)
	if !ok {
		return
	}

	resp, err := s.Latest(c.Request.Context(), sensorID)
	if err != nil {
		writeQueryError(c, err, "Failed to load latest reading")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleHistory handles GET /v1/energy/history/:sensor_id
// Query parameters: date, start, end, granularity
func (s *Service) HandleHistory(c *gin.Context) {
	sensorID, ok := bindSensorID(c)
	if !ok {
		return
	}

	var query struct {
		Date        string `form:"date"`
		Start       string `form:"start"`
		End         string `form:"end"`
		Granularity string `form:"granularity"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidQuery(c, "Invalid query parameters", err)
		return
	}

	day, ok := bindDate(c, query.Date)
	if !ok {
		return
	}
	from, ok := bindInstant(c, "start", query.Start)
	if !ok {
		return
	}
	to, ok := bindInstant(c, "end", query.End)
	if !ok {
		return
	}

	resp, err := s.History(c.Request.Context(), HistoryQuery{
		SensorID:    sensorID,
		Day:         day,
		From:        from,
		To:          to,
		Granularity: query.Granularity,
	})
	if err != nil {
		writeQueryError(c, err, "Failed to load reading history")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDailyTotal handles GET /v1/energy/daily/:sensor_id?date=
func (s *Service) HandleDailyTotal(c *gin.Context) {
	sensorID, ok := bindSensorID(c)
	if !ok {
		return
	}
	day, ok := bindDate(c, c.Query("date"))
	if !ok {
		return
	}

	resp, err := s.DailyTotal(c.Request.Context(), sensorID, day)
	if err != nil {
		writeQueryError(c, err, "Failed to compute daily total")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCityStats handles GET /v1/stats?date=
func (s *Service) HandleCityStats(c *gin.Context) {
	day, ok := bindDate(c, c.Query("date"))
	if !ok {
		return
	}

	resp, err := s.CityStats(c.Request.Context(), day)
	if err != nil {
		writeQueryError(c, err, "Failed to compute city statistics")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDistrictStats handles GET /v1/stats/daily/:district?date=
func (s *Service) HandleDistrictStats(c *gin.Context) {
	day, ok := bindDate(c, c.Query("date"))
	if !ok {
		return
	}

	resp, err := s.DistrictStats(c.Request.Context(), c.Param("district"), day)
	if err != nil {
		writeQueryError(c, err, "Failed to compute district statistics")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRollup handles POST /v1/stats/rollup
func (s *Service) HandleRollup(c *gin.Context) {
	var req RollupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.Rollup(c.Request.Context(), req)
	if err != nil {
		writeQueryError(c, err, "Failed to compute rollup")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDistricts handles GET /v1/stats/districts
func (s *Service) HandleDistricts(c *gin.Context) {
	resp, err := s.Districts(c.Request.Context())
	if err != nil {
		writeQueryError(c, err, "Failed to list districts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDistrict handles GET /v1/stats/districts/:district
func (s *Service) HandleDistrict(c *gin.Context) {
	resp, err := s.District(c.Request.Context(), c.Param("district"))
	if err != nil {
		writeQueryError(c, err, "Failed to load district")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func bindSensorID(c *gin.Context) (string, bool) {
	var uri struct {
		SensorID string `uri:"sensor_id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		writeInvalidQuery(c, "Invalid path parameters", err)
		return "", false
	}
	if _, err := uuid.Parse(uri.SensorID); err != nil {
		writeInvalidQuery(c, "sensor_id must be a UUID", err)
		return "", false
	}
	return uri.SensorID, true
}

// bindDate parses an optional YYYY-MM-DD value; empty yields the zero Date.
func bindDate(c *gin.Context, raw string) (v1.Date, bool) {
	if raw == "" {
		return v1.Date{}, true
	}
	day, err := v1.ParseDate(raw)
	if err != nil {
		writeInvalidQuery(c, "date must be YYYY-MM-DD", err)
		return v1.Date{}, false
	}
	return day, true
}

// bindInstant parses an optional RFC 3339 value.
func bindInstant(c *gin.Context, name, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		writeInvalidQuery(c, name+" must be an RFC 3339 timestamp", err)
		return nil, false
	}
	return &t, true
}

func writeInvalidQuery(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   message,
		Details:   err.Error(),
	})
}

// writeQueryError maps service errors onto HTTP statuses.
func writeQueryError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		writeInvalidQuery(c, "Invalid query", err)
	case errors.Is(err, ErrNoReadings):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "No readings for sensor today or yesterday",
		})
	case errors.Is(err, registry.ErrDistrictNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "District not found",
			Details:   map[string]interface{}{"district": c.Param("district")},
		})
	case errors.Is(err, httperr.ErrStorageUnavailable):
		slog.Warn("[Projection] Storage unavailable", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpStorageUnavailableError,
			Message:   "Storage temporarily unavailable, retry later",
		})
	default:
		slog.Error("[Projection] Query failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
