package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-inventory-dashboard/internal/config"
	"asset-inventory-dashboard/internal/diagnostics"
	"asset-inventory-dashboard/internal/infrastructure/database/postgres"
	"asset-inventory-dashboard/internal/logger"
	"asset-inventory-dashboard/internal/routes"
	"asset-inventory-dashboard/pkg/mqtt"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
		zap.Int("fetch_concurrency", cfg.Dashboard.FetchConcurrency),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	sink, closeSink := newDiagnosticsSink(cfg)
	defer closeSink()

	services := routes.NewServices(cfg, db, sink)
	router := routes.SetupRoutes(cfg, db, services)

	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	go services.Dashboard.StartSessionJanitor(janitorCtx, cfg.Dashboard.JanitorInterval)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	// Snapshot requests may wait for a full enrichment pass.
	writeTimeout := 15 * time.Second
	if cfg.Dashboard.SnapshotTimeout+5*time.Second > writeTimeout {
		writeTimeout = cfg.Dashboard.SnapshotTimeout + 5*time.Second
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
	}

	janitorCancel()
	services.Dashboard.CloseAll()

	logger.Info("Server exited properly")
}

// newDiagnosticsSink publishes enrichment diagnostics over MQTT when a broker is
// configured. Connection failures fall back to discarding diagnostics.
func newDiagnosticsSink(cfg *config.Config) (diagnostics.Sink, func()) {
	if cfg.MQTT.Broker == "" {
		return diagnostics.NopSink{}, func() {}
	}

	client := mqtt.NewClient(&mqtt.Config{
		Broker:               cfg.MQTT.Broker,
		ClientID:             cfg.MQTT.ClientID,
		Username:             cfg.MQTT.Username,
		Password:             cfg.MQTT.Password,
		CleanSession:         true,
		KeepAlive:            cfg.MQTT.KeepAlive,
		ConnectTimeout:       cfg.MQTT.ConnectTimeout,
		AutoReconnect:        true,
		MaxReconnectInterval: time.Minute,
	})
	if err := client.Connect(); err != nil {
		logger.Warn("Diagnostics publisher disabled", zap.Error(err))
		return diagnostics.NopSink{}, func() {}
	}

	sink := diagnostics.NewMQTTSink(client, cfg.Dashboard.DiagnosticsTopic, cfg.MQTT.QoS, 0)
	logger.Info("Diagnostics publisher enabled",
		zap.String("broker", cfg.MQTT.Broker),
		zap.String("topic", cfg.Dashboard.DiagnosticsTopic),
	)

	return sink, func() {
		sink.Close()
		client.Disconnect()
	}
}
