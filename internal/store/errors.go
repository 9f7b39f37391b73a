package store

import "errors"

// Connection errors returned while opening the storage backend.
var (
	// ErrUnknownDriver is returned when the configured driver is not one of
	// mysql, postgres, sqlite or memory.
	ErrUnknownDriver = errors.New("unknown database driver")

	// ErrConnectingDatabase is returned when the driver cannot open or ping
	// the database.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrMigratingDatabase is returned when the startup migration fails.
	ErrMigratingDatabase = errors.New("error migrating database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrReadingResult is returned when the affected-row count or the
	// generated id cannot be read from a statement result.
	ErrReadingResult = errors.New("failed to read statement result")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan animal row")

	// ErrScanningRows is returned when iterating over a result set fails
	// mid-way.
	ErrScanningRows = errors.New("failed to scan animal rows")
)
