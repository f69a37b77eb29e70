package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/repository"
	"github.com/gatherly/backend/internal/worker"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment")
	}

	config, err := dto.LoadConfig()
	if err != nil {
		logrus.Panic(err)
	}

	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logrus.Panic(err)
	}

	repositories := repository.NewRepositories(db)
	clients := client.NewClients(config)
	defer clients.Queue().Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.Info("Starting notification worker")
	if err := worker.NewWorker(clients, repositories).Run(ctx); err != nil && ctx.Err() == nil {
		logrus.Panic(err)
	}
}
