package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"newsletter.app/internal/ports"
)

func TestHealthHandler_Liveness(t *testing.T) {
	ts := newTestServer(t)

	w := ts.browser().get("/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Details(t *testing.T) {
	tests := []struct {
		name           string
		status         ports.HealthStatus
		expectedStatus int
		expectedLabel  string
	}{
		{
			name:           "healthy",
			status:         ports.HealthStatus{Component: "database", Status: ports.HealthStatusHealthy},
			expectedStatus: http.StatusOK,
			expectedLabel:  ports.HealthStatusHealthy,
		},
		{
			name:           "unhealthy",
			status:         ports.HealthStatus{Component: "database", Status: ports.HealthStatusUnhealthy, Error: "database ping failed"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedLabel:  ports.HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.dbHealth.EXPECT().Check(mock.Anything).Return(tt.status)

			w := ts.browser().get("/health/details")

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedLabel, response.Status)
			assert.Equal(t, tt.status, response.Components["database"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	b := ts.browser()

	b.get("/health")
	b.postForm("/subscriptions", url.Values{"name": {"Dione"}})

	w := b.get("/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `newsletter_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `newsletter_http_requests_total{method="POST",route="/subscriptions",status="400"} 1`)
	assert.Contains(t, body, "newsletter_http_request_duration_seconds")
}
