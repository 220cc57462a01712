package db

import (
	"context"
	"fmt"
	"log"

	"calorietracker/internal/config"
	"calorietracker/internal/repository"
)

// Store is an opened storage backend with its repositories.
type Store struct {
	Repos repository.Repositories
	close func(context.Context) error
}

// Close releases the underlying connection pool.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.DBDriver, prepares its schema
// and wires the matching repositories.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if cfg.ResetDB {
			log.Println("RESET_DB=true detected, dropping all tables...")
		}
		if err := Migrate(gormDB, cfg.ResetDB); err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("mysql pool: %w", err)
		}
		return &Store{
			Repos: repository.NewGormRepositories(gormDB),
			close: func(context.Context) error { return sqlDB.Close() },
		}, nil

	case config.DriverMongo:
		mongoDB, err := NewMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		if cfg.ResetDB {
			log.Println("RESET_DB=true detected, dropping database...")
			if err := mongoDB.Drop(ctx); err != nil {
				return nil, fmt.Errorf("drop mongo database: %w", err)
			}
		}
		if err := repository.EnsureMongoIndexes(ctx, mongoDB); err != nil {
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return &Store{
			Repos: repository.NewMongoRepositories(mongoDB),
			close: mongoDB.Client().Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", cfg.DBDriver, config.DriverMySQL, config.DriverMongo)
	}
}
