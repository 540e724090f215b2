// @title Trivia API
// @version 1.0
// @description Categories, questions and quiz play for the trivia game.
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "trivia-api/cmd/api/docs"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/repository"
	"trivia-api/internal/server"
	"trivia-api/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	health := make(map[string]handler.Pinger)

	// Storage
	var categoryRepo domain.CategoryRepository
	var questionRepo domain.QuestionRepository
	switch cfg.DB.Driver {
	case config.DriverMemory:
		appLogger.Warn("Using in-memory storage, data is lost on exit")
		categoryRepo = repository.NewMemoryCategoryStore(repository.DefaultCategories()...)
		questionRepo = repository.NewMemoryQuestionStore()
	default:
		db, err := database.NewSQLXDB(cfg)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to database", zap.String("driver", cfg.DB.Driver), zap.String("dialect", string(database.DialectOf(db))))

		categoryRepo = repository.NewCategoryDatabaseAdapter(db)
		questionRepo = repository.NewQuestionDatabaseAdapter(db, repository.NewTransactionManagerAdapter(db))
		health["database"] = handler.PingerFunc(db.PingContext)
	}

	// Category cache is optional
	var categoryCache service.CategoryCacheService
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, category cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
			categoryCache = service.NewCategoryCacheService(cacheAdapter, cfg.Redis.CategoryTTL)
			health["cache"] = cacheAdapter
			appLogger.Info("Category cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.CategoryTTL))
		}
	}

	triviaService := service.NewTriviaService(categoryRepo, questionRepo, categoryCache)

	app := server.New(cfg, server.Dependencies{
		Service: triviaService,
		Metrics: metrics.New(),
		Health:  health,
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
