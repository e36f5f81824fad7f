package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cineMatch/app/echo-server/router"
	"cineMatch/business/catalog"
	"cineMatch/business/movie"
	"cineMatch/business/recommend"
	"cineMatch/internal/middleware"
	"cineMatch/internal/repository/csvfile"
	psqlRepo "cineMatch/internal/repository/postgres"
	redisRepo "cineMatch/internal/repository/redis"
	"cineMatch/internal/rest"
	"cineMatch/pkg/config"
	"cineMatch/pkg/database"
	redisdb "cineMatch/pkg/database/redis"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/metrics"
	"cineMatch/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting cineMatch", "version", cfg.App.Version, "source", cfg.Catalog.Source)

	metrics.Init()

	// Init catalog source
	var source catalog.Source
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")
		source = psqlRepo.NewCatalogRepository(db)
	default:
		source = csvfile.NewCatalogSource(cfg.Catalog)
	}

	// Init cache
	var cache recommend.RecommendationCache
	var redisClient *goredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		cache = redisRepo.NewRecommendationCache(redisClient, cfg.Reco.CacheTTL)
		logger.Info("Recommendation cache enabled", "ttl", cfg.Reco.CacheTTL.String())
	}

	// Init service
	recoCfg := recommend.DefaultConfig()
	recoCfg.WeightKeywords = cfg.Reco.WeightKeywords
	recoCfg.WeightGenres = cfg.Reco.WeightGenres
	recoCfg.DefaultResults = cfg.Reco.DefaultResults
	recoCfg.MaxResults = cfg.Reco.MaxResults
	recoCfg.PosterHost = cfg.Reco.PosterHost
	recoCfg.SnippetLength = cfg.Reco.SnippetLength

	recoService := recommend.NewService(catalog.NewLoader(source), cache, recoCfg)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Minute)
	snap, err := recoService.Reload(loadCtx)
	cancelLoad()
	if err != nil {
		var missing *catalog.SourceMissingError
		if errors.As(err, &missing) {
			logger.Fatal("Catalog file not found", "source", missing.Source, "path", missing.Path, "error", err)
		}
		logger.Fatal("Failed to build catalog", "error", err)
	}
	logger.Info("Catalog ready", "version", snap.Version, "movies", snap.Catalog.Len())

	movieService := movie.NewMovieService(recoService, cfg.Reco.PosterHost)

	// Init handler
	recoHandler := rest.NewRecommendHandler(recoService, recoCfg.DefaultWeights())
	movieHandler := rest.NewMovieHandler(movieService)
	catalogHandler := rest.NewCatalogHandler(recoService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recoHandler)
	router.SetupMovieRoutes(api, movieHandler)

	if cfg.JWT.SecretKey != "" {
		utils.SetJWTSecret(cfg.JWT.SecretKey)
		router.SetupCatalogRoutes(api, catalogHandler, middleware.AuthMiddleware(), middleware.AdminOnly())
	} else {
		logger.Warn("JWT_SECRET not set, catalog reload endpoint disabled")
		router.SetupCatalogRoutes(api, catalogHandler)
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	logger.Info("Server stopped")
}
