package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskcollab/internal/adapter/auth"
	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

const callerKey = "caller"

// AuthMiddleware resolves the bearer token into the request caller.
func AuthMiddleware(verifier ports.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		caller, err := verifier.VerifyAccessToken(strings.TrimSpace(token))
		if err != nil {
			msgKey := apierrors.MsgInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				msgKey = apierrors.MsgTokenExpired
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, msgKey, lang),
			)
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok || !caller.IsAdmin() {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgAdminOnly, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

func GetCaller(c *gin.Context) (domain.Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return domain.Caller{}, false
	}
	caller, ok := value.(domain.Caller)
	return caller, ok
}

// SetCaller is used by tests that bypass token verification.
func SetCaller(caller domain.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(callerKey, caller)
		c.Next()
	}
}
