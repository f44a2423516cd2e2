package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/courtside-dev/roster-sim/internal/api"
	"github.com/courtside-dev/roster-sim/internal/api/handlers"
	"github.com/courtside-dev/roster-sim/internal/api/middleware"
	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/names"
	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/random"
	"github.com/courtside-dev/roster-sim/internal/services"
	"github.com/courtside-dev/roster-sim/internal/store"
	"github.com/courtside-dev/roster-sim/pkg/config"
	"github.com/courtside-dev/roster-sim/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logrus.Fatalf("Failed to migrate schema: %v", err)
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// League context and randomness
	lg := league.NewContext(cfg.StartingSeason)
	lg.NumTeams = cfg.NumTeams
	lg.GamesPerSeason = cfg.GamesPerSeason

	var rnd *random.Source
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	} else {
		rnd = random.New()
	}

	// Stores and services
	playerStore := store.NewGormPlayerStore(db)
	teamStore := store.NewGormTeamStore(db)
	financeStore := store.NewGormFinanceStore(db)
	cacheService := services.NewCacheService(redisClient)

	directory := services.NewTeamDirectory(teamStore)
	if err := directory.Reload(ctx); err != nil {
		logrus.Warnf("Team directory empty, seed a league first: %v", err)
	}

	engine := player.NewEngine(lg, directory)
	identitySvc := names.NewService(rnd)
	leagueSvc := services.NewLeagueService(lg, rnd, identitySvc, playerStore, teamStore, logrus.StandardLogger())

	refreshInterval, err := time.ParseDuration(cfg.FreeAgentRefreshInterval)
	if err != nil {
		logrus.Warnf("Invalid free agent refresh interval, using default 5m: %v", err)
		refreshInterval = 5 * time.Minute
	}
	freeAgency := services.NewFreeAgencyService(lg, rnd, engine, playerStore, teamStore, financeStore, cacheService, logrus.StandardLogger(), refreshInterval)
	if err := freeAgency.Start(); err != nil {
		logrus.Errorf("Failed to start free agency service: %v", err)
	}
	defer freeAgency.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Health check endpoint
	healthHandler := handlers.NewHealthHandler(lg)
	router.GET("/health", healthHandler.Health)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, lg, engine, playerStore, cacheService, leagueSvc, freeAgency, directory)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
