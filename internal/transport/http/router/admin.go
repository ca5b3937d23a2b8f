package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"loyalty-club-backend/internal/core/auth"
	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/internal/service"
	mdw "loyalty-club-backend/internal/transport/http/middleware"
)

// NewAdminEngine builds the back-office server. Every /admin/v1 route
// requires an ADMIN token; these are the only callers allowed to resolve
// pending items.
func NewAdminEngine(l *zap.Logger, svc *service.AccountService, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, string(domain.RoleAdmin)))

	MountAdminActions(admin, svc)

	return r
}
