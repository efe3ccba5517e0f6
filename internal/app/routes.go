package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thesignal/core/internal/middleware"
	"github.com/thesignal/core/internal/modules/feedback"
	"github.com/thesignal/core/internal/modules/news"
	pkgredis "github.com/thesignal/core/internal/pkg/redis"
	"github.com/thesignal/core/internal/pkg/response"
)

var processStart = time.Now()

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"uptime":   time.Since(processStart).Truncate(time.Second).String(),
			"database": a.db != nil,
			"jobs":     a.sched.List(),
		})
	})

	var store *news.Store
	if a.db != nil {
		store = news.NewStore(a.db)
	}
	cache := news.NewFileCache(a.cfg.CacheDir)
	aggregator := news.NewAggregator(store, cache, a.logger)

	// Reads within the cache window are identical for every client, so
	// a short shared-response cache absorbs traffic spikes.
	readGroup := api.Group("", middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{}))
	news.RegisterRoutes(readGroup, aggregator)

	feedbackSvc := feedback.NewService(a.db, a.logger)
	feedback.RegisterRoutes(api, feedbackSvc, a.limiter, a.logger)
}
