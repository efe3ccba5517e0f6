package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thesignal/core/internal/config"
	"github.com/thesignal/core/internal/database"
	"github.com/thesignal/core/internal/middleware"
	pkgcron "github.com/thesignal/core/internal/pkg/cron"
	"github.com/thesignal/core/internal/pkg/ratelimit"
	pkgredis "github.com/thesignal/core/internal/pkg/redis"
)

// App holds all application dependencies.
type App struct {
	cfg     *config.AppConfig
	router  *gin.Engine
	db      *gorm.DB
	logger  *zap.Logger
	limiter *ratelimit.Limiter
	sched   *pkgcron.Scheduler
	cancel  context.CancelFunc
}

// New initializes the application: config → DB → Redis → routes. The
// database and Redis are both optional; without a database the read path
// serves from cache and the static bundle, and feedback submission is
// unavailable.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		if !errors.Is(err, database.ErrNotConfigured) {
			return nil, fmt.Errorf("database: %w", err)
		}
		logger.Warn("no database configured, serving from cache and fallback only")
		db = nil
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		corsConfig.AllowOriginFunc = allowOriginFunc(cfg.AllowedOrigins)
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	limiter := ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow)

	ctx, cancel := context.WithCancel(context.Background())
	sched := pkgcron.New()
	registerCronJobs(sched, cfg, db, limiter, logger)
	go sched.Start(ctx)

	app := &App{
		cfg:     cfg,
		router:  router,
		db:      db,
		logger:  logger,
		limiter: limiter,
		sched:   sched,
		cancel:  cancel,
	}
	app.registerRoutes(rc)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown cleans up background goroutines.
func (a *App) Shutdown() { a.cancel() }
