package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newsletter.app/internal/core/subscription"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// SubscriptionRequest represents the subscribe form
type SubscriptionRequest struct {
	Name  string `form:"name" binding:"required,subscriber_name"`
	Email string `form:"email" binding:"required,email"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

// home handles GET / requests
func (s *HTTPServerAdapter) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

// subscribe handles POST /subscriptions requests
func (s *HTTPServerAdapter) subscribe(c *gin.Context) {
	var httpReq SubscriptionRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		s.logger.Debug("Subscription binding failed", ports.F("error", err))
		s.handleError(c, errors.NewValidationError("Invalid subscription form"))
		return
	}

	err := s.subscriptionUseCase.Subscribe(c.Request.Context(), subscription.SubscribeParams{
		Name:  httpReq.Name,
		Email: httpReq.Email,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Subscription successful. Confirmation email sent."})
}

// confirmSubscription handles GET /subscriptions/confirm requests
func (s *HTTPServerAdapter) confirmSubscription(c *gin.Context) {
	token := c.Query("subscription_token")
	if token == "" {
		s.handleError(c, errors.NewValidationError("subscription_token parameter is required"))
		return
	}

	if err := s.subscriptionUseCase.Confirm(c.Request.Context(), subscription.ConfirmParams{Token: token}); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Subscription confirmed successfully"})
}
