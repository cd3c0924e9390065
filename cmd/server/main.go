package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropadvisor/internal/auth"
	"cropadvisor/internal/cache"
	"cropadvisor/internal/config"
	"cropadvisor/internal/db"
	"cropadvisor/internal/handler"
	"cropadvisor/internal/knowledge"
	"cropadvisor/internal/ml"
	"cropadvisor/internal/model"
	"cropadvisor/internal/repository"
	"cropadvisor/internal/router"
	"cropadvisor/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.Open(cfg.DBDriver, cfg.SQLitePath, cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Model and encoder load once at startup. A failed load is logged and the
	// predict route reports the model as unavailable instead of crashing.
	classifier, err := ml.LoadClassifier(cfg.ModelPath)
	if err != nil {
		logger.Warn("classifier load failed",
			zap.String("path", cfg.ModelPath), zap.Error(err))
		classifier = nil
	} else {
		logger.Info("classifier loaded",
			zap.String("path", cfg.ModelPath), zap.Int("trees", len(classifier.Trees)))
	}

	encoder, err := ml.LoadEncoder(cfg.EncoderPath)
	if err != nil {
		logger.Warn("label encoder load failed, falling back to raw class indices",
			zap.String("path", cfg.EncoderPath), zap.Error(err))
		encoder = nil
	} else {
		logger.Info("label encoder loaded",
			zap.String("path", cfg.EncoderPath), zap.Strings("classes", encoder.Classes))
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	cropService := service.NewCropService(knowledge.NewImageResolver(cfg.AssetsDir))
	predictionService := service.NewPredictionService(classifier, ml.NewLabelResolver(encoder), logger)

	// Initialize handlers
	pageHandler := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler(authService)
	cropHandler := handler.NewCropHandler(cropService)
	predictHandler := handler.NewPredictHandler(predictionService)

	e := echo.New()
	e.Use(middleware.RequestID())

	// Register routes
	if err := router.Register(
		e,
		cfg,
		sessionStore,
		pageHandler,
		authHandler,
		cropHandler,
		predictHandler,
	); err != nil {
		logger.Fatal("router init", zap.Error(err))
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
