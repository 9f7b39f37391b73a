package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/migrations"
)

// DB is a bounded *sql.DB pool together with the dialect it speaks and the
// classifier of its driver errors.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a pool for cfg.Driver, applies the pool limits and pings
// the database within cfg.ConnectTimeout.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(cfg, log)
	case config.DriverMySQL:
		db, err = NewConnectMySQL(cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	configurePool(db.DB, cfg)

	if err := db.ping(ctx, cfg); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return db, nil
}

// Dialect returns the SQL dialect of the pool.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the pool's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect.Name); err != nil {
		return fmt.Errorf("%w: %w", ErrMigratingDatabase, err)
	}

	return nil
}

// classify returns the retry classification of err, or NonRetryable when no
// classifier is set.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

func (db *DB) ping(ctx context.Context, cfg config.DB) error {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		db.logger.Err(err).Str("func", "*DB.ping").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		return fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	return nil
}

func configurePool(conn *sql.DB, cfg config.DB) {
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}
