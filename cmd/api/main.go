package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/helpcentre-io/helpcentre-api/config"
	"github.com/helpcentre-io/helpcentre-api/internal/content/dismissal"
	"github.com/helpcentre-io/helpcentre-api/internal/email"
	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	articleHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/article"
	authHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/auth"
	catalogHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/catalog"
	contactHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/contact"
	noticeHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/notice"
	regionHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/region"
	searchHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/search"
	userHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/user"
	"github.com/helpcentre-io/helpcentre-api/internal/middleware"
	"github.com/helpcentre-io/helpcentre-api/internal/repository/jsonstore"
	"github.com/helpcentre-io/helpcentre-api/internal/router"
	articleService "github.com/helpcentre-io/helpcentre-api/internal/service/article"
	authService "github.com/helpcentre-io/helpcentre-api/internal/service/auth"
	catalogService "github.com/helpcentre-io/helpcentre-api/internal/service/catalog"
	contactService "github.com/helpcentre-io/helpcentre-api/internal/service/contact"
	noticeService "github.com/helpcentre-io/helpcentre-api/internal/service/notice"
	regionService "github.com/helpcentre-io/helpcentre-api/internal/service/region"
	searchService "github.com/helpcentre-io/helpcentre-api/internal/service/search"
	userService "github.com/helpcentre-io/helpcentre-api/internal/service/user"
	jwtauth "github.com/helpcentre-io/helpcentre-api/pkg/auth"
	"github.com/helpcentre-io/helpcentre-api/pkg/logger"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Logging)

	// Document store
	store, err := jsonstore.New(cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open document store")
	}
	m := metrics.NewMetrics(cfg.Monitoring.MetricsPrefix)

	regionRepo := jsonstore.NewRegionStore(store)
	contentRepo := jsonstore.NewContentStore(store, m)
	userRepo := jsonstore.NewUserStore(cfg.Data.UsersFile)

	// Dismissals persist across restarts in bbolt; fall back to memory when
	// the file cannot be opened (e.g. read-only filesystems).
	var dismissals dismissal.Store
	if bolt, err := dismissal.NewBoltStore(cfg.Data.DismissalsDB); err != nil {
		log.Warn().Err(err).Msg("dismissal db unavailable, using in-memory store")
		dismissals = dismissal.NewMemoryStore()
	} else {
		dismissals = bolt
	}
	defer dismissals.Close()

	var mailer email.Service = email.Noop{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPService(cfg.SMTP)
	}

	// Services
	jwtSvc := jwtauth.NewJWTService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.ExpiryHours)*time.Hour)
	authSvc := authService.NewService(cfg.Auth, jwtSvc)
	regionSvc := regionService.NewService(regionRepo)
	catalogSvc := catalogService.NewService(regionRepo, contentRepo)
	noticeSvc := noticeService.NewService(regionRepo, contentRepo, dismissals, m)
	userSvc := userService.NewService(userRepo)
	searchSvc := searchService.NewService(regionRepo, contentRepo, m)
	articleSvc := articleService.NewService(cfg.ArticleAPI, m)
	contactSvc := contactService.NewService(regionRepo, contentRepo, mailer)

	// Handlers
	h := handler.NewHandler(version, nil)
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	public := []router.Handler{
		authHandler.NewHandler(authSvc),
		userHandler.NewHandler(userSvc),
		articleHandler.NewHandler(articleSvc),
		contactHandler.NewHandler(contactSvc),
	}
	admin := []router.AdminHandler{
		regionHandler.NewHandler(regionSvc),
		catalogHandler.NewHandler(catalogSvc),
		noticeHandler.NewHandler(noticeSvc),
		searchHandler.NewHandler(searchSvc),
	}

	cors := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		cors.AllowedOrigins = cfg.Security.AllowedOrigins
	}
	if len(cfg.Security.AllowedMethods) > 0 {
		cors.AllowedMethods = cfg.Security.AllowedMethods
	}
	if len(cfg.Security.AllowedHeaders) > 0 {
		cors.AllowedHeaders = cfg.Security.AllowedHeaders
	}

	r := router.NewRouter(authMiddleware, h, public, admin, router.Config{
		RateLimit:     rateLimit(cfg.RateLimit),
		RateBurst:     cfg.RateLimit.Burst,
		Timeout:       cfg.Server.RequestTimeout,
		CacheMaxAge:   time.Minute,
		CORS:          cors,
		MetricsPrefix: cfg.Monitoring.MetricsPrefix,
	})
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func rateLimit(cfg config.RateLimitConfig) float64 {
	if !cfg.Enabled {
		return 0
	}
	return cfg.RequestsPerSecond
}
