package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newsletter.app/internal/ports"
)

// HealthResponse summarises the health of every component
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// healthDetails handles GET /health/details requests
func (s *HTTPServerAdapter) healthDetails(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	statusCode := http.StatusOK
	overall := ports.HealthStatusHealthy
	for _, status := range components {
		if !status.IsHealthy() {
			statusCode = http.StatusServiceUnavailable
			overall = ports.HealthStatusUnhealthy
			break
		}
	}

	c.JSON(statusCode, HealthResponse{Status: overall, Components: components})
}
