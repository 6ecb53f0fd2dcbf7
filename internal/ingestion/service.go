package ingestion

import (
	"github.com/Schnee111/smart-city-monitoring-system/internal/registry"
	"github.com/gin-gonic/gin"
)

type Service struct {
	writer           *Writer
	registry         registry.Registry
	maxBodySizeBytes int
}

func NewService(writer *Writer, reg registry.Registry, maxBodySizeMB int) *Service {
	if writer == nil {
		panic("ingestion: writer must not be nil")
	}
	if reg == nil {
		panic("ingestion: registry must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		writer:           writer,
		registry:         reg,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/energy/ingest", s.IngestHandler)
	r.POST("/v1/energy/ingest/async", s.IngestAsyncHandler)
}
