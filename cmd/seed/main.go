package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/seed"

	"go.uber.org/zap"
)

func main() {
	seedFilePath := flag.String("file", "database/seed_questions.json", "path to the question seed file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	if cfg.DB.Driver == config.DriverMemory {
		log.Fatal("Seeding needs a SQL database, memory driver configured")
	}

	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	f, err := os.Open(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to open seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}
	defer f.Close()

	questions, err := seed.Load(f)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.String("path", *seedFilePath), zap.Int("questions", len(questions)))

	txManager := repository.NewTransactionManagerAdapter(db)
	seeder := seed.NewSeeder(repository.NewQuestionDatabaseAdapter(db, txManager), txManager, log)
	if _, err := seeder.Run(context.Background(), questions); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}
