package http

import (
	"net/http"
	"time"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/content"
	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Records   int       `json:"records"`
}

type HealthHandler struct {
	serviceName string
	version     string
	store       *content.Store
}

func NewHealthHandler(serviceName, version string, store *content.Store) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	records := 0
	if h.store != nil {
		records = h.store.Count()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Records:   records,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
