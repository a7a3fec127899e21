package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/dto"
)

const ownerIDKey = "auth.owner_id"

// RequireOwner aborts with 401 unless the request carries a live session.
// The session's owner id is then available through OwnerID.
func RequireOwner(resolver SessionResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolver.Resolve(c.Request.Context(), TokenFromRequest(c.Request))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
					Error:   "unauthorized",
					Message: "a valid owner session is required",
				})
				return
			}

			log.Error("Failed to resolve session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "internal_error",
				Message: "failed to resolve session",
			})
			return
		}

		c.Set(ownerIDKey, session.OwnerID)
		c.Next()
	}
}

// OwnerID returns the owner set by RequireOwner.
func OwnerID(c *gin.Context) (string, bool) {
	id := c.GetString(ownerIDKey)
	return id, id != ""
}
