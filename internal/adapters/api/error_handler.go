package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps an application error to a JSON response. Storage,
// transport and unexpected failures never expose their details.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		s.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
		return
	}

	var statusCode int
	message := appErr.Message

	switch appErr.Type {
	case errors.ValidationError:
		statusCode = http.StatusBadRequest
	case errors.TokenError, errors.AuthError:
		statusCode = http.StatusUnauthorized
	case errors.NotFoundError:
		statusCode = http.StatusNotFound
	case errors.AlreadyExistsError:
		statusCode = http.StatusConflict
	default:
		s.logFailure(c, err)
		statusCode = http.StatusInternalServerError
		message = internalErrorMessage
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handlePageError answers an HTML route with a bare 500
func (s *HTTPServerAdapter) handlePageError(c *gin.Context, err error) {
	s.logFailure(c, err)
	c.String(http.StatusInternalServerError, internalErrorMessage)
	c.Abort()
}

func (s *HTTPServerAdapter) logFailure(c *gin.Context, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("Request failed",
		ports.F("method", c.Request.Method),
		ports.F("path", c.Request.URL.Path),
		ports.F("error", err))
}

// userMessage extracts the message of the outermost AppError
func userMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
