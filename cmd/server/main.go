package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"doctorsportal/docs"
	"doctorsportal/internal/auth"
	"doctorsportal/internal/cache"
	"doctorsportal/internal/config"
	"doctorsportal/internal/db"
	"doctorsportal/internal/handler"
	"doctorsportal/internal/logging"
	"doctorsportal/internal/metrics"
	"doctorsportal/internal/router"
	"doctorsportal/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Doctors Portal API
// @version 1.0
// @description Clinic appointment booking API: services, availability, bookings, doctors and user roles.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	root := &cobra.Command{
		Use:   "server",
		Short: "Doctors portal booking API",
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	store, closeStore, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Str("driver", cfg.StoreDriver).Msg("database init")
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cacheClient == nil {
		logger.Info().Msg("REDIS_ADDR not set, caching disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(store.Users, jwtService, cacheClient)
	catalogService := service.NewCatalogService(store.Services, store.Bookings, cacheClient)
	bookingService := service.NewBookingService(store.Bookings, appMetrics, logger)
	doctorService := service.NewDoctorService(store.Doctors)

	e := echo.New()
	router.Register(e, cfg, router.Dependencies{
		Logger:   logger,
		Metrics:  appMetrics,
		Gatherer: registry,
		Tokens:   jwtService,
		Roles:    userService,
	}, router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Users:    handler.NewUserHandler(userService),
		Bookings: handler.NewBookingHandler(bookingService),
		Doctors:  handler.NewDoctorHandler(doctorService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	logger.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info().Str("addr", addr).Str("driver", cfg.StoreDriver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server start")
		}
		shutdownResources(logger, closeStore, cacheClient)
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	shutdownResources(logger, closeStore, cacheClient)
	return nil
}

func shutdownResources(logger zerolog.Logger, closeStore db.CloseFunc, cacheClient *cache.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := closeStore(ctx); err != nil {
		logger.Error().Err(err).Msg("close store")
	}
	if err := cacheClient.Close(); err != nil {
		logger.Error().Err(err).Msg("close cache")
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
