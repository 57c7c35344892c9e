package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/config"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/helper"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/services"
)

type AuthHandler struct {
	authService services.AuthService
	cfg         *config.Config
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, cfg *config.Config, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	session, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.Helper.SendUnauthorizedError(c, models.ErrInvalidCredentials.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendServiceError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, session.Token, maxAge, "/", "", h.cfg.SecureCookies, true)

	h.Helper.SendSuccess(c, "Login success", user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(config.SessionCookieName)
	if err == nil && token != "" {
		h.authService.Logout(c.Request.Context(), token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", h.cfg.SecureCookies, true)

	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity, exists := c.Get("identity")
	if !exists {
		h.Helper.SendUnauthorizedError(c, models.ErrUnauthorized.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", identity.(*models.AdminIdentity))
}
