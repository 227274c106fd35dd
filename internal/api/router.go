package api

import (
	"net/http"
	"time"

	"github.com/apk-analysis/dexkit-go/internal/api/handlers"
	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/apk-analysis/dexkit-go/internal/metrics"
	"github.com/apk-analysis/dexkit-go/internal/middleware"
	"github.com/apk-analysis/dexkit-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const Version = "1.0.0"

// SetupRouter memMonitor 与 promMetrics 可为 nil
func SetupRouter(cfg *config.Config, logger *logrus.Logger, sessions service.SessionService, memMonitor *metrics.MemoryMonitor, promMetrics *metrics.PrometheusMetrics) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(logger))
	r.Use(CORSMiddleware())

	if promMetrics != nil {
		r.Use(promMetrics.HTTPMiddleware())
		r.GET("/metrics/prometheus", promMetrics.Handler())
	}
	if memMonitor != nil {
		r.GET("/metrics", memMonitor.MetricsEndpoint())
	}

	sessionHandler := handlers.NewSessionHandler(sessions, logger)
	queryHandler := handlers.NewQueryHandler(sessions, logger, cfg.Server.MaxPayloadSize)

	v1 := r.Group("/api")
	{
		// 健康检查（无需认证）
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":   "ok",
				"version":  Version,
				"sessions": len(sessions.List()),
			})
		})

		authed := v1.Group("", middleware.AuthMiddleware(cfg.Server.AuthToken))

		authed.GET("/archives", sessionHandler.ListArchives)
		authed.GET("/archives/stats", sessionHandler.ArchiveStats)

		// 会话管理
		authed.POST("/sessions", sessionHandler.CreateSession)
		authed.GET("/sessions", sessionHandler.ListSessions)
		authed.GET("/sessions/:id", sessionHandler.GetSession)
		authed.DELETE("/sessions/:id", sessionHandler.DeleteSession)
		authed.POST("/sessions/:id/archives", sessionHandler.LoadArchive)
		authed.PUT("/sessions/:id/threads", sessionHandler.SetThreadCount)
		authed.POST("/sessions/:id/cache", sessionHandler.BuildCache)
		authed.POST("/sessions/:id/export", sessionHandler.Export)

		// 查询
		authed.POST("/sessions/:id/query/:kind", queryHandler.Query)
		authed.POST("/sessions/:id/lookup/:kind", queryHandler.Lookup)
		authed.GET("/sessions/:id/methods/:mid/parameter-names", queryHandler.ParameterNames)
		authed.GET("/sessions/:id/methods/:mid/using-strings", queryHandler.UsingStrings)
		authed.GET("/sessions/:id/methods/:mid/op-codes", queryHandler.OpCodes)
	}

	return r
}

// LoggerMiddleware 日志中间件
func LoggerMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"latency": time.Since(startTime).Milliseconds(),
		}).Info("HTTP Request")
	}
}

// CORSMiddleware CORS 中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Result-Status")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
