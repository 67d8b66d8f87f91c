package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/jobby-board/internal/dtos"
	"github.com/justsurfingit/jobby-board/internal/middleware"
	"github.com/justsurfingit/jobby-board/internal/services"
	"github.com/justsurfingit/jobby-board/internal/views"
)

// GenericLoginError is shown when the login call failed for a reason other
// than the credentials (the API gave no message to repeat).
const GenericLoginError = "Something went wrong. Please try again"

type AuthHandler struct {
	AuthService *services.AuthService
	Logger      *zap.Logger
}

func NewAuthHandler(a *services.AuthService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{AuthService: a, Logger: logger}
}

// ShowLogin is GET /login. Someone already holding a token goes home instead.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, ok := middleware.SessionFrom(c).Get(); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, views.TemplateLogin, views.LoginPage{Next: c.Query("next")})
}

// Login is POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dtos.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, views.TemplateLogin, views.LoginPage{ErrorMsg: GenericLoginError})
		return
	}

	token, err := h.AuthService.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		page := views.LoginPage{Username: form.Username, Next: form.Next, ErrorMsg: GenericLoginError}
		var authErr *services.AuthenticationError
		if errors.As(err, &authErr) {
			page.ErrorMsg = authErr.Message
		}
		c.HTML(http.StatusOK, views.TemplateLogin, page)
		return
	}

	if err := middleware.SessionFrom(c).Set(token); err != nil {
		c.HTML(http.StatusOK, views.TemplateLogin, views.LoginPage{Username: form.Username, Next: form.Next, ErrorMsg: GenericLoginError})
		return
	}
	c.Redirect(http.StatusSeeOther, middleware.SafeNext(form.Next))
}

// Logout is POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.SessionFrom(c).Clear(); err != nil {
		h.Logger.Debug("session clear failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
