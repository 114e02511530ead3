package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskcollab/pkg/apierrors"
)

// RecoveryMiddleware turns panics into the translated 500 envelope. The
// panic value and stack are echoed back unless gin runs in release mode.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			stack := string(debug.Stack())
			zap.L().Error("panic recovered",
				zap.Any("panic", rec),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("stack", stack),
			)

			apiErr := apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, GetLang(c))
			if gin.Mode() != gin.ReleaseMode {
				apiErr = apiErr.WithDebug(fmt.Sprintf("%v\n%s", rec, stack))
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, apiErr)
		}()

		c.Next()
	}
}
