package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/config"
	"github.com/shenikar/incident_console/internal/handler/http/middleware"
	v1 "github.com/shenikar/incident_console/internal/handler/http/v1"
	"github.com/shenikar/incident_console/internal/handler/web"
	"github.com/shenikar/incident_console/internal/service"
	"github.com/shenikar/incident_console/internal/store"
	"github.com/shenikar/incident_console/pkg/logger"
	redisclient "github.com/shenikar/incident_console/pkg/redis"

	_ "github.com/shenikar/incident_console/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newStore выбирает кэш запросов: общий Redis, если задан REDIS_ADDR, иначе память процесса
func newStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store.Store, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR is not set, using in-memory query cache")
		return store.NewMemoryStore(), func() {}, nil
	}

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to Redis")

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis client")
		}
	}
	return store.NewRedisStore(redisClient, cfg.CacheKeyPrefix), closeFn, nil
}

// @title Incident Console API
// @version 1.0
// @description JSON facade of the incident reporting console over the remote incident service.
// @host localhost:3000
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Кэш запросов
	cache, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize query cache: %v", err)
	}
	defer closeStore()

	// Клиент удаленного сервиса инцидентов
	client, err := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, log)
	if err != nil {
		log.Fatalf("Failed to create incident service client: %v", err)
	}
	incidentAPI := apiclient.NewIncidentAPI(client)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentAPI, cache, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(log))

	web.NewHandler(incidentService, log, cfg).RegisterRoutes(router)

	api := router.Group("/api/v1")
	v1.NewHandler(incidentService, log, cfg).RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("api_base_url", cfg.APIBaseURL).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
