package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"newsletter.app/internal/core/auth"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const (
	msgAuthenticationFailed = "Authentication failed"
	msgSomethingWentWrong   = "Something went wrong"
	msgLoggedOut            = "You have successfully logged out."
	msgPasswordChanged      = "Your password has been changed."
)

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ChangePasswordRequest represents the change password form
type ChangePasswordRequest struct {
	CurrentPassword  string `form:"current_password"`
	NewPassword      string `form:"new_password"`
	NewPasswordCheck string `form:"new_password_check"`
}

// loginForm handles GET /login requests
func (s *HTTPServerAdapter) loginForm(c *gin.Context) {
	flashes, err := s.sessions.Flashes(c.Writer, c.Request)
	if err != nil {
		s.handlePageError(c, err)
		return
	}
	if message, ok := s.loginErrors.Decode(c.Query(loginErrorName)); ok {
		flashes = append(flashes, message)
	}
	c.HTML(http.StatusOK, "login.html", flashPage{Flashes: flashes})
}

// login handles POST /login requests
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var httpReq LoginRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		c.Redirect(http.StatusSeeOther, s.loginErrors.loginRedirect(msgAuthenticationFailed))
		return
	}

	userID, err := s.authUseCase.ValidateCredentials(c.Request.Context(), auth.Credentials{
		Username: httpReq.Username,
		Password: httpReq.Password,
	})
	if err != nil {
		if errors.IsAuthError(err) {
			c.Redirect(http.StatusSeeOther, s.loginErrors.loginRedirect(msgAuthenticationFailed))
			return
		}
		s.logFailure(c, err)
		c.Redirect(http.StatusSeeOther, s.loginErrors.loginRedirect(msgSomethingWentWrong))
		return
	}

	if err := s.sessions.Login(c.Writer, c.Request, userID); err != nil {
		s.logFailure(c, err)
		c.Redirect(http.StatusSeeOther, s.loginErrors.loginRedirect(msgSomethingWentWrong))
		return
	}

	s.logger.Info("Admin logged in", ports.F("userID", userID))
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// logout handles POST /admin/logout requests
func (s *HTTPServerAdapter) logout(c *gin.Context) {
	if err := s.sessions.Logout(c.Writer, c.Request, msgLoggedOut); err != nil {
		s.handlePageError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// adminDashboard handles GET /admin/dashboard requests
func (s *HTTPServerAdapter) adminDashboard(c *gin.Context) {
	userID := currentUserID(c)

	username, err := s.authUseCase.GetUsername(c.Request.Context(), userID)
	if err != nil {
		s.handlePageError(c, err)
		return
	}

	stats, err := s.subscriptionUseCase.GetStats(c.Request.Context())
	if err != nil {
		s.handlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", dashboardView{Username: username, Stats: stats})
}

// changePasswordForm handles GET /admin/password requests
func (s *HTTPServerAdapter) changePasswordForm(c *gin.Context) {
	flashes, err := s.sessions.Flashes(c.Writer, c.Request)
	if err != nil {
		s.handlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "password.html", flashPage{Flashes: flashes})
}

// changePassword handles POST /admin/password requests
func (s *HTTPServerAdapter) changePassword(c *gin.Context) {
	var httpReq ChangePasswordRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid password form"))
		return
	}

	err := s.authUseCase.ChangePassword(c.Request.Context(), auth.ChangePasswordParams{
		UserID:           currentUserID(c),
		CurrentPassword:  httpReq.CurrentPassword,
		NewPassword:      httpReq.NewPassword,
		NewPasswordCheck: httpReq.NewPasswordCheck,
	})

	flash := msgPasswordChanged
	if err != nil {
		if !errors.IsValidationError(err) && !errors.IsAuthError(err) {
			s.handlePageError(c, err)
			return
		}
		flash = userMessage(err)
	}

	if err := s.sessions.AddFlash(c.Writer, c.Request, flash); err != nil {
		s.handlePageError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/password")
}

func currentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(userIDContextKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
