package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"doctorsportal/internal/config"
	"doctorsportal/internal/repository"
)

// CloseFunc releases the store connection.
type CloseFunc func(ctx context.Context) error

// Open connects to the store selected by cfg.StoreDriver, prepares its
// schema or indexes, and returns the repositories built on it.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*repository.Store, CloseFunc, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if cfg.ResetDB {
			logger.Warn().Str("database", cfg.MongoDatabase).Msg("RESET_DB=true detected, dropping database")
			if err := database.Drop(ctx); err != nil {
				_ = client.Disconnect(ctx)
				return nil, nil, fmt.Errorf("drop database: %w", err)
			}
		}
		if err := repository.EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongodb")
		return repository.NewMongoStore(database), client.Disconnect, nil

	case config.DriverMySQL:
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(gormDB, cfg.ResetDB, logger); err != nil {
			_ = CloseMySQL(gormDB)
			return nil, nil, err
		}
		logger.Info().Msg("connected to mysql")
		return repository.NewSQLStore(gormDB), func(context.Context) error { return CloseMySQL(gormDB) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
