package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roadmate/roadmate/internal/pkg/config"
	"github.com/roadmate/roadmate/internal/pkg/database"
	"github.com/roadmate/roadmate/internal/pkg/health"
	"github.com/roadmate/roadmate/internal/pkg/logger"
	natspkg "github.com/roadmate/roadmate/internal/pkg/nats"
	wspkg "github.com/roadmate/roadmate/internal/pkg/websocket"
	"github.com/roadmate/roadmate/services/discovery/gateway"
	"github.com/roadmate/roadmate/services/discovery/handler"
	httpHandler "github.com/roadmate/roadmate/services/discovery/handler/http"
	natsHandler "github.com/roadmate/roadmate/services/discovery/handler/nats"
	wsHandler "github.com/roadmate/roadmate/services/discovery/handler/websocket"
	"github.com/roadmate/roadmate/services/discovery/repository"
	"github.com/roadmate/roadmate/services/discovery/usecase"
)

func main() {
	appName := "discovery-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	markerCache := repository.NewMarkerCacheRepo(redisClient, configs.Discovery)
	credentialRepo := repository.NewCredentialRepo(postgresClient)

	// Initialize gateway
	discoveryGW := gateway.NewDiscoveryGW(configs.Services, natsClient)

	// Initialize usecase
	discoveryUC := usecase.NewDiscoveryUC(configs, discoveryGW, markerCache, credentialRepo)

	// Initialize handlers
	nearbyHandler := httpHandler.NewNearbyHandler(discoveryUC)
	manager := wspkg.NewManager(configs.JWT)
	webSocketHandler := wsHandler.NewWebSocketHandler(manager, discoveryUC)
	natsEventHandler := natsHandler.NewNatsHandler(natsClient, discoveryUC)

	h := handler.NewHandler(nearbyHandler, webSocketHandler, natsEventHandler, configs)
	defer h.Close()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	if err := h.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to register routes", logger.Err(err))
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		zapLogger.Info("Starting server", logger.String("address", addr))
		if err := e.Start(addr); err != nil {
			zapLogger.Info("Server stopped", logger.Err(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server shutdown failed", logger.Err(err))
	}
	zapLogger.Info("Server exited")
}
