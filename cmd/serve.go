package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/domain/event"
	"logistics-backoffice/internal/infrastructure/messaging"
	"logistics-backoffice/internal/infrastructure/redisstore"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/routes"
	"logistics-backoffice/pkg/mqtt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(runMigrations)
		},
	}
	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "Apply pending migrations before serving")

	return cmd
}

func serve(runMigrations bool) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if runMigrations {
		if err := migrateUp(db); err != nil {
			return err
		}
	}

	redisClient := redisstore.NewRedisClient(&cfg.Redis)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close redis client", zap.Error(err))
		}
	}()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	publisher, checks, closePublisher, err := newPublisher(&cfg.MQTT)
	if err != nil {
		return err
	}
	defer closePublisher()

	routerCtx, stopRouter := context.WithCancel(context.Background())
	defer stopRouter()
	router := routes.SetupRoutes(routerCtx, cfg, db, redisClient, publisher, checks...)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info("Server exited properly")
	return nil
}

// newPublisher connects to the MQTT broker when one is configured.
// Without a broker, events are dropped and no health check is added.
func newPublisher(cfg *config.MQTTConfig) (event.Publisher, []routes.HealthCheck, func(), error) {
	if cfg.Broker == "" {
		logger.Info("MQTT broker not configured, events will not be published")
		return event.NopPublisher{}, nil, func() {}, nil
	}

	mqttCfg := mqtt.DefaultConfig(cfg.Broker, cfg.ClientID)
	mqttCfg.Username = cfg.Username
	mqttCfg.Password = cfg.Password

	client := mqtt.NewClient(mqttCfg)
	if err := client.Connect(); err != nil {
		return nil, nil, nil, err
	}

	checks := []routes.HealthCheck{{Name: "mqtt", Check: client.Health}}
	return messaging.NewMQTTPublisher(client, cfg.TopicPrefix, cfg.QoS), checks, client.Disconnect, nil
}
