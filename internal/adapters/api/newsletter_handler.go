package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newsletter.app/internal/core/auth"
	"newsletter.app/internal/core/newsletter"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	basicAuthChallenge   = `Basic realm="publish"`
)

// PublishNewsletterForm represents the admin newsletter form
type PublishNewsletterForm struct {
	Title          string `form:"title" binding:"required"`
	HTMLContent    string `form:"html_content" binding:"required"`
	TextContent    string `form:"text_content" binding:"required"`
	IdempotencyKey string `form:"idempotency_key" binding:"required"`
}

// PublishNewsletterRequest represents the JSON body of POST /newsletters
type PublishNewsletterRequest struct {
	Title   string         `json:"title" binding:"required"`
	Content NewsletterBody `json:"content"`
}

// NewsletterBody holds both renditions of an issue
type NewsletterBody struct {
	HTML string `json:"html" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// PublishResponse reports the delivery summary of an issue
type PublishResponse struct {
	Message   string `json:"message"`
	Delivered int    `json:"delivered"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

// publishNewsletterForm handles GET /admin/newsletter requests
func (s *HTTPServerAdapter) publishNewsletterForm(c *gin.Context) {
	flashes, err := s.sessions.Flashes(c.Writer, c.Request)
	if err != nil {
		s.handlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "newsletter.html", newsletterView{
		Flashes:        flashes,
		IdempotencyKey: newsletter.NewIdempotencyKey().String(),
	})
}

// publishNewsletter handles POST /admin/newsletter requests
func (s *HTTPServerAdapter) publishNewsletter(c *gin.Context) {
	var form PublishNewsletterForm
	if err := c.ShouldBind(&form); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid newsletter form"))
		return
	}

	outcome, err := s.newsletterUseCase.Publish(c.Request.Context(), newsletter.PublishParams{
		UserID:         currentUserID(c),
		IdempotencyKey: newsletter.IdempotencyKey(form.IdempotencyKey),
		Issue: newsletter.Issue{
			Title: form.Title,
			HTML:  form.HTMLContent,
			Text:  form.TextContent,
		},
	})

	var flash string
	switch {
	case err == nil:
		flash = outcome.Message()
	case errors.IsValidationError(err):
		s.handleError(c, err)
		return
	case errors.IsAlreadyExistsError(err):
		flash = userMessage(err)
	default:
		s.handlePageError(c, err)
		return
	}

	if err := s.sessions.AddFlash(c.Writer, c.Request, flash); err != nil {
		s.handlePageError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/newsletter")
}

// publishNewsletterAPI handles POST /newsletters requests authenticated
// with HTTP Basic credentials
func (s *HTTPServerAdapter) publishNewsletterAPI(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		s.challenge(c, errors.NewAuthError("missing basic credentials", nil))
		return
	}

	userID, err := s.authUseCase.ValidateCredentials(c.Request.Context(), auth.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.IsAuthError(err) {
			s.challenge(c, err)
			return
		}
		s.handleError(c, err)
		return
	}

	var httpReq PublishNewsletterRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid newsletter body"))
		return
	}

	key := newsletter.NewIdempotencyKey()
	if header := c.GetHeader(idempotencyKeyHeader); header != "" {
		key = newsletter.IdempotencyKey(header)
	}

	outcome, err := s.newsletterUseCase.Publish(c.Request.Context(), newsletter.PublishParams{
		UserID:         userID,
		IdempotencyKey: key,
		Issue: newsletter.Issue{
			Title: httpReq.Title,
			HTML:  httpReq.Content.HTML,
			Text:  httpReq.Content.Text,
		},
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Debug("Newsletter published through API",
		ports.F("userID", userID),
		ports.F("outcome", outcome.Label()))
	c.JSON(http.StatusOK, PublishResponse{
		Message:   outcome.Message(),
		Delivered: outcome.Delivered,
		Skipped:   outcome.Skipped,
		Failed:    outcome.Failed,
	})
}

func (s *HTTPServerAdapter) challenge(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", basicAuthChallenge)
	s.handleError(c, err)
}
