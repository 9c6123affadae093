package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-book-api/internal/core/auth"
	"go-book-api/internal/core/config"
	"go-book-api/internal/transport/http/handler"
	mdw "go-book-api/internal/transport/http/middleware"
)

func NewAPIEngine(
	cfg *config.Config,
	l *zap.Logger,
	jwter *auth.JWTer,
	rdb *redis.Client,
	authH *handler.AuthHandler,
	bookH *handler.BookHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.MaxBodyBytes(1<<20),
		mdw.ConcurrencyLimit(300),
		mdw.Timeout(10*time.Second),
		cors.Default(),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	general := limiter(rdb, "general", cfg.RateLimit.General, false)
	authLim := limiter(rdb, "auth", cfg.RateLimit.Auth, true) // 成功的登录/注册不计数

	ag := r.Group("/auth", general, authLim)
	ag.POST("/register", authH.Register)
	ag.POST("/login", authH.Login)

	// 所有 /books 路由都要求登录
	bg := r.Group("/books", general, mdw.AuthJWT(jwter))
	bg.POST("", bookH.Create)
	bg.GET("", bookH.List)
	bg.GET("/:id", bookH.Get)
	bg.PUT("/:id", bookH.Update)
	bg.DELETE("/:id", bookH.Delete)
	bg.POST("/:id/like", bookH.Like)

	return r
}

// limiter redis 可用走固定窗口，否则退回进程内令牌桶
func limiter(rdb *redis.Client, name string, lim config.Limit, skipSuccessful bool) gin.HandlerFunc {
	window := time.Duration(lim.WindowMin) * time.Minute
	if rdb != nil {
		return mdw.RedisWindow(rdb, name, lim.Max, window, skipSuccessful)
	}
	rps := rate.Limit(float64(lim.Max) / window.Seconds())
	return mdw.RateLimitPerIP(rps, lim.Max)
}
