package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers treated as transient.
const (
	mysqlErrLockWaitTimeout uint16 = 1205
	mysqlErrLockDeadlock    uint16 = 1213
	mysqlErrTooManyConns    uint16 = 1040
	mysqlErrServerShutdown  uint16 = 1053
)

// NewConnectMySQL opens a MySQL pool. The DSN is rewritten so that
// RowsAffected counts matched rows (clientFoundRows), otherwise an UPDATE
// that sets a row to its current values would look like "not found".
func NewConnectMySQL(cfg config.DB, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error parsing mysql dsn")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	mysqlCfg.ClientFoundRows = true
	if cfg.ConnectTimeout > 0 {
		mysqlCfg.Timeout = cfg.ConnectTimeout
	}

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error creating mysql connector")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	return &DB{
		DB:                 sql.OpenDB(connector),
		dialect:            MySQLDialect,
		logger:             log,
		errorClassificator: NewMySQLErrorClassifier(),
	}, nil
}

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Broken connections, deadlocks,
// lock wait timeouts and "too many connections" are [Retryable].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrLockWaitTimeout, mysqlErrLockDeadlock, mysqlErrTooManyConns, mysqlErrServerShutdown:
			return Retryable
		}
	}

	return NonRetryable
}
