package middleware

import (
	"crypto/subtle"

	apperrors "cms-backend/errors"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared admin secret on mutating requests.
const AdminTokenHeader = "X-Admin-Token"

// AdminRequired guards mutating endpoints with a single shared secret. When
// the server-side token is unconfigured the gate fails closed with a 500
// rather than silently opening. The comparison is constant-time.
func AdminRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			err := apperrors.ErrAdminTokenNotConfigured
			c.AbortWithStatusJSON(err.Code, err)
			return
		}

		supplied := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			err := apperrors.ErrInvalidAdminToken
			c.AbortWithStatusJSON(err.Code, err)
			return
		}

		c.Next()
	}
}
