package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/response"
)

// RequireRoles checks that the caller's role is one of the allowed
// roles. Record-level visibility is handled separately by the scope
// resolver; this only gates whole endpoints.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrRoleAccessDenied)
	}
}
