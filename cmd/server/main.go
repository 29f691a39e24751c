package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackhub/internal/cache"
	"feedbackhub/internal/config"
	"feedbackhub/internal/db"
	"feedbackhub/internal/handler"
	"feedbackhub/internal/model"
	"feedbackhub/internal/repository"
	"feedbackhub/internal/router"
	"feedbackhub/internal/service"
	"feedbackhub/internal/session"
	"feedbackhub/internal/web"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Feedback{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessionManager := session.NewManager(cfg.SessionSecret)

	userRepo := repository.NewUserRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	userService := service.NewUserService(userRepo, cacheClient)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	authHandler := handler.NewAuthHandler(userService, sessionManager)
	userHandler := handler.NewUserHandler(userService, feedbackService, sessionManager)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, sessionManager)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("renderer init: %v", err)
	}

	e := echo.New()
	router.Register(e, renderer, authHandler, userHandler, feedbackHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
