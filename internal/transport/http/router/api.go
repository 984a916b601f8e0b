package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-user-api/internal/transport/http/handler"
	mdw "go-user-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, userH *handler.UserHandler, sysH *handler.SystemHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	sysH.Mount(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userH.Mount(r.Group("/user"))

	return r
}
