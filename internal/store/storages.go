package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
)

// Storages aggregates the repositories of the service together with the
// pool they run on.
type Storages struct {
	AnimalRepository AnimalRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.Driver. For SQL drivers the
// pool is connected, migrated unless cfg.SkipMigrations, and wrapped in an
// [AnimalRepository]; "memory" needs no connection at all.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	if cfg.Driver == config.DriverMemory {
		return &Storages{AnimalRepository: NewMemoryAnimalRepository(log)}, nil
	}

	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		if err := db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			db.Close()
			return nil, fmt.Errorf("error preparing storages: %w", err)
		}
		log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect().Name).Msg("database migrated")
	}

	return &Storages{
		AnimalRepository: NewAnimalRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
