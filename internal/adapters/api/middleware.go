package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"newsletter.app/internal/core/subscription"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const (
	userIDContextKey = "userID"
	unmatchedRoute   = "unmatched"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators adds the custom binding tags to gin's validator once
// per process
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = errors.NewConfigurationError("gin validator engine is not validator/v10", nil)
			return
		}
		validatorsErr = v.RegisterValidation("subscriber_name", validateSubscriberName)
	})
	return validatorsErr
}

func validateSubscriberName(fl validator.FieldLevel) bool {
	_, err := subscription.ParseSubscriberName(fl.Field().String())
	return err == nil
}

// observe records request count and latency per matched route
func (s *HTTPServerAdapter) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		s.metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
		s.logger.Debug("Request handled",
			ports.F("method", c.Request.Method),
			ports.F("route", route),
			ports.F("status", c.Writer.Status()))
	}
}

// requireLogin rejects anonymous requests to admin pages
func (s *HTTPServerAdapter) requireLogin(c *gin.Context) {
	userID, ok, err := s.sessions.UserID(c.Request)
	if err != nil {
		s.handlePageError(c, err)
		return
	}
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Set(userIDContextKey, userID)
	c.Next()
}
