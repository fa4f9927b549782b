package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"doctorsportal/internal/cache"
	"doctorsportal/internal/config"
	"doctorsportal/internal/db"
	"doctorsportal/internal/logging"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
	"doctorsportal/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into the store",
	}
	root.AddCommand(newServicesCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServicesCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Upsert the treatment catalog by name from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			logger := logging.New(cfg.LogLevel, cfg.Env)
			return seedServices(cmd.Context(), cfg, logger, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed/services.yaml", "YAML file with a list of {name, slots}")
	return cmd
}

func seedServices(ctx context.Context, cfg *config.Config, logger zerolog.Logger, path string) error {

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	services, err := loadServices(f)
	if err != nil {
		return err
	}
	logger.Info().Str("file", path).Int("services", len(services)).Msg("loaded seed file")

	// seeding never wipes the store
	cfg.ResetDB = false
	store, closeStore, err := db.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("close store")
		}
	}()

	// the running server reads the catalog through this cache
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() {
		if err := cacheClient.Close(); err != nil {
			logger.Warn().Err(err).Msg("close cache")
		}
	}()

	n, err := seedCatalog(ctx, store, cacheClient, services)
	if err != nil {
		return err
	}

	logger.Info().Int("upserted", n).Msg("seed completed successfully")
	return nil
}

// seedCatalog upserts services and drops the cached catalog so servers
// sharing cacheClient pick up the new slots immediately.
func seedCatalog(ctx context.Context, store *repository.Store, cacheClient *cache.Client, services []model.Service) (int, error) {
	catalog := service.NewCatalogService(store.Services, store.Bookings, cacheClient)
	n, err := catalog.Seed(ctx, services)
	if err != nil {
		return n, fmt.Errorf("seed services: %w", err)
	}
	return n, nil
}

// loadServices decodes a YAML list of services.
func loadServices(r io.Reader) ([]model.Service, error) {
	var services []model.Service
	if err := yaml.NewDecoder(r).Decode(&services); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, s := range services {
		if s.Name == "" {
			return nil, fmt.Errorf("parse seed file: service #%d has no name", i+1)
		}
	}
	return services, nil
}
