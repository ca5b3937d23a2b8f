package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"loyalty-club-backend/internal/core/auth"
	"loyalty-club-backend/internal/core/cache"
	"loyalty-club-backend/internal/service"
	mdw "loyalty-club-backend/internal/transport/http/middleware"
)

// NewAPIEngine builds the client-facing server: public auth actions plus the
// logged-in dashboard surface. The browser SPA is the expected caller, hence
// the permissive CORS.
func NewAPIEngine(l *zap.Logger, svc *service.AccountService, jwter *auth.JWTer, ch *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	mountAuthActions(api, authed, svc, jwter)
	mountClientActions(authed, svc, ch)

	return r
}
