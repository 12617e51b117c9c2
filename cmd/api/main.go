package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	errs "github.com/logsnack/logsnack/internal/domain/error"
	"github.com/logsnack/logsnack/internal/domain/logger"
	"github.com/logsnack/logsnack/internal/domain/port/core"
	"github.com/logsnack/logsnack/internal/domain/port/persistence"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/api/handler"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/api/routes"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/database"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/repository"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/sink"
	timeProvider "github.com/logsnack/logsnack/internal/infrastructure/adapter/time"
	"github.com/logsnack/logsnack/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Threshold: configured level, or derived from build mode
	threshold, err := cfg.Threshold()
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Logger.Level, err)
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Build the sink list in configuration order; the fatal sink, when
	// enabled, always goes last so other sinks record bug-level messages
	// before the process terminates.
	sinks, entries, closers, err := buildSinks(cfg, tp)
	if err != nil {
		log.Fatalf("Failed to build sinks: %v", err)
	}
	defer func() {
		for _, closeFn := range closers {
			_ = closeFn()
		}
	}()

	logs := logger.New(threshold, sinks...)
	logs.Info(fmt.Sprintf("logsnack starting (env=%s, threshold=%s, sinks=%d)",
		cfg.Environment, threshold, len(sinks)))

	// Initialize API handlers
	logHandler := handler.NewLogHandler(logs, entries)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, logs)

	// Setup routes
	routes.SetupRoutes(router, logHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logs.Info(fmt.Sprintf("listening on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Error("failed to start server: " + err.Error())
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logs.Info("shutting down...")

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		logs.Error("server forced to shutdown: " + err.Error())
	}

	logs.Info("exited gracefully")
}

// buildSinks turns the configured sink names into live sinks, in order. It
// also picks the entry source backing the query endpoints (database when
// configured, memory ring otherwise) and collects close/flush hooks for
// shutdown.
func buildSinks(cfg *config.Config, tp core.TimeProvider) ([]core.Sink, persistence.EntryRepository, []func() error, error) {
	var (
		sinks   []core.Sink
		entries persistence.EntryRepository
		closers []func() error
	)

	for _, name := range cfg.Logger.Sinks {
		switch name {
		case "console":
			sinks = append(sinks, sink.NewConsoleSink(os.Stdout, tp))
		case "debug":
			sinks = append(sinks, sink.NewDebugSink(os.Stdout, tp))
		case "file":
			fileSink, err := sink.NewFileSink(cfg.Logger.FilePath, tp)
			if err != nil {
				return nil, nil, closers, errs.NewSinkError(name, err)
			}
			sinks = append(sinks, fileSink)
			closers = append(closers, fileSink.Close)
		case "zap":
			zapSink := sink.NewZapSink(cfg.Environment == config.Production)
			sinks = append(sinks, zapSink)
			closers = append(closers, zapSink.Flush)
		case "memory":
			memSink := sink.NewMemorySink(cfg.Logger.MemoryCapacity, tp)
			sinks = append(sinks, memSink)
			if entries == nil {
				entries = memSink
			}
		case "database":
			conn, err := database.NewConnection(&database.Config{
				Host:            cfg.Database.Host,
				Port:            database.ParsePort(cfg.Database.Port),
				Username:        cfg.Database.Username,
				Password:        cfg.Database.Password,
				Database:        cfg.Database.Database,
				SSLMode:         cfg.Database.SSLMode,
				MaxOpenConns:    cfg.Database.MaxOpenConns,
				MaxIdleConns:    cfg.Database.MaxIdleConns,
				ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
				ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
				QueryTimeout:    cfg.Database.QueryTimeout,
			})
			if err != nil {
				return nil, nil, closers, errs.NewSinkError(name, err)
			}
			closers = append(closers, conn.Close)
			if err := conn.Migrate(); err != nil {
				return nil, nil, closers, errs.NewSinkError(name, err)
			}
			repo := repository.NewEntryRepository(conn.DB)
			sinks = append(sinks, sink.NewDatabaseSink(repo, tp, core.Duration(cfg.Database.QueryTimeout)))
			// The database is the preferred query source when present.
			entries = repo
		case "noop":
			sinks = append(sinks, sink.NewNoopSink())
		default:
			return nil, nil, closers, errs.NewSinkError(name, errs.ErrUnknownSink)
		}
	}

	// The query endpoints need an entry source even when neither retaining
	// sink was configured.
	if entries == nil {
		memSink := sink.NewMemorySink(cfg.Logger.MemoryCapacity, tp)
		sinks = append(sinks, memSink)
		entries = memSink
	}

	if cfg.Logger.FatalOnBug {
		sinks = append(sinks, sink.NewFatalSink(os.Stderr, nil))
	}

	return sinks, entries, closers, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Database configuration is only required when the database sink is on
	if sinkConfigured(cfg, "database") {
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or LS_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or LS_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or LS_DB_NAME environment variable)")
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	}

	// File sink needs a path
	if sinkConfigured(cfg, "file") && cfg.Logger.FilePath == "" {
		missingConfigs = append(missingConfigs, "logger.filePath")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}

// sinkConfigured reports whether the named sink appears in logger.sinks
func sinkConfigured(cfg *config.Config, name string) bool {
	for _, s := range cfg.Logger.Sinks {
		if s == name {
			return true
		}
	}
	return false
}
