package middleware

import (
	"strings"

	"github.com/campaignhub/campaignhub/internal/auth/jwt"
	"github.com/campaignhub/campaignhub/internal/common/cnst"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware creates a middleware that validates JWT tokens
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			i18n.RespondWithError(c, i18n.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			i18n.RespondWithError(c, i18n.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			i18n.RespondWithError(c, i18n.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(cnst.ContextKeyClaims, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims the auth middleware stored, or nil
// when the request never passed through it.
func ClaimsFromContext(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(cnst.ContextKeyClaims)
	if !ok {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}
