package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pump_sizing/docs" // swagger docs, generated by swag
	"pump_sizing/internal/engine"
	"pump_sizing/internal/handlers"
	"pump_sizing/internal/logger"
	"pump_sizing/internal/repository"
	"pump_sizing/internal/repository/db"
	"pump_sizing/internal/server"
	"pump_sizing/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml before the logger so the configured level applies
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	cfg, err := serviceConfig()
	if err != nil {
		log.Fatalw("invalid configuration", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, cfg)
	apiHandler := handlers.NewHandler(services, log, viper.GetStringSlice("ws.allowed_origins"))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	// The signing key should come from the environment in production.
	if err := viper.BindEnv("auth.signing_key", "PUMP_SIZING_SIGNING_KEY"); err != nil {
		return err
	}
	return viper.ReadInConfig()
}

// serviceConfig maps the config file onto the service settings. Zero solver
// values fall back to the engine defaults.
func serviceConfig() (service.Config, error) {
	cfg := service.Config{
		Engine: engine.Config{
			FrictionTol:     viper.GetFloat64("solver.friction_tol"),
			FrictionMaxIter: viper.GetInt("solver.friction_max_iter"),
			RootTolRel:      viper.GetFloat64("solver.root_tol_rel"),
			RootMaxIter:     viper.GetInt("solver.root_max_iter"),
			ScanSamples:     viper.GetInt("solver.scan_samples"),
			NPSHMinMarginM:  viper.GetFloat64("solver.npsh_min_margin_m"),
		},
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	}
	if cfg.SigningKey == "" {
		return service.Config{}, errors.New("auth.signing_key (or PUMP_SIZING_SIGNING_KEY) is required")
	}
	return cfg, nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "pump_sizing.db")
		dbPath = "pump_sizing.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
