package main

import (
	"fmt"

	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/controller"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/repository"
	"github.com/gatherly/backend/internal/service"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
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

	services := service.NewServices(repositories, config, clients)
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	controllers.Route(e)

	logrus.Infof("Starting server on port %d", config.Port)
	if err := e.Start(fmt.Sprintf(":%d", config.Port)); err != nil {
		logrus.Panic(err)
	}
}
