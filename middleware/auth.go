package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/config"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/helper"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/services"
)

var HTTPHelper = &helper.HTTPHelper{}

// AuthMiddleware resolves the session cookie into an admin identity.
// Every failure mode (no cookie, unknown token, expired session,
// deactivated user) produces the same unauthorized response.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.SessionCookieName)
		if err != nil || token == "" {
			HTTPHelper.SendUnauthorizedError(c, models.ErrUnauthorized.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		identity := authService.ResolveSession(c.Request.Context(), token)
		if identity == nil {
			HTTPHelper.SendUnauthorizedError(c, models.ErrUnauthorized.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("admin_id", identity.ID)
		c.Set("username", identity.Username)
		c.Set("role", string(identity.Role))
		c.Set("identity", identity)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Runs after
// AuthMiddleware; a valid session with the wrong role is forbidden,
// not unauthorized.
func RequireRole(roles ...models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, models.ErrUnauthorized.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		roleStr := userRole.(string)
		for _, role := range roles {
			if roleStr == string(role) {
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, models.ErrForbidden.Error(), HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
