package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskcollab/internal/adapter/http/middleware"
	"taskcollab/internal/core/ports"
)

type RouterConfig struct {
	ClientOrigins  []string
	TrustedProxies []string
}

// NewRouter builds the engine with recovery, request logging and CORS in
// front of the API routes.
func NewRouter(logger *zap.Logger, conf RouterConfig, verifier ports.TokenVerifier, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(conf.TrustedProxies); err != nil {
		return nil, err
	}

	r.Use(
		middleware.RecoveryMiddleware(),
		middleware.GinZapMiddleware(logger),
		cors.New(corsConfig(conf.ClientOrigins)),
	)
	RegisterRoutes(r, verifier, h)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
		return conf
	}
	conf.AllowOrigins = origins
	return conf
}
