package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

func newTestHTTPProvider(t *testing.T, baseURL string, timeout time.Duration) *HTTPEmailProviderAdapter {
	t.Helper()
	provider, err := NewHTTPEmailProviderAdapter(HTTPEmailProviderConfig{
		BaseURL:            baseURL,
		Sender:             "newsletter@example.com",
		AuthorizationToken: "server-token",
		Timeout:            timeout,
	})
	require.NoError(t, err)
	return provider
}

func validEmailParams() ports.EmailParams {
	return ports.EmailParams{
		To:       "ursula@example.com",
		Subject:  "Welcome!",
		HTMLBody: "<p>content</p>",
		TextBody: "content",
	}
}

func TestHTTPEmailProviderAdapter_SendEmail_RequestShape(t *testing.T) {
	var received sendEmailRequest
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "server-token", r.Header.Get(serverTokenHeader))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := newTestHTTPProvider(t, server.URL, time.Second)

	err := provider.SendEmail(context.Background(), validEmailParams())

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, sendEmailRequest{
		From:     "newsletter@example.com",
		To:       "ursula@example.com",
		Subject:  "Welcome!",
		HTMLBody: "<p>content</p>",
		TextBody: "content",
	}, received)
}

func TestHTTPEmailProviderAdapter_SendEmail_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := newTestHTTPProvider(t, server.URL, time.Second)

	err := provider.SendEmail(context.Background(), validEmailParams())

	require.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPEmailProviderAdapter_SendEmail_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(release)

	provider := newTestHTTPProvider(t, server.URL, 50*time.Millisecond)

	err := provider.SendEmail(context.Background(), validEmailParams())

	require.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
}

func TestHTTPEmailProviderAdapter_SendEmail_InvalidParams(t *testing.T) {
	provider := newTestHTTPProvider(t, "http://127.0.0.1:1", time.Second)

	err := provider.SendEmail(context.Background(), ports.EmailParams{Subject: "x", TextBody: "y"})

	assert.True(t, errors.IsValidationError(err))
}

func TestNewHTTPEmailProviderAdapter_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config HTTPEmailProviderConfig
	}{
		{"MissingBaseURL", HTTPEmailProviderConfig{Sender: "a@example.com", Timeout: time.Second}},
		{"MissingSender", HTTPEmailProviderConfig{BaseURL: "http://localhost", Timeout: time.Second}},
		{"ZeroTimeout", HTTPEmailProviderConfig{BaseURL: "http://localhost", Sender: "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewHTTPEmailProviderAdapter(tt.config)
			assert.Nil(t, provider)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}
