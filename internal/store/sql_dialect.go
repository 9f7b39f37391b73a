package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Dialect describes the differences between the supported SQL backends that
// matter to query building.
type Dialect struct {
	// Name is the dialect name, equal to the migrations directory.
	Name string

	// Placeholder is the bind-parameter style of the driver.
	Placeholder sq.PlaceholderFormat

	// ReturningID reports whether INSERT ... RETURNING id is used to read the
	// generated id instead of sql.Result.LastInsertId.
	ReturningID bool
}

var (
	// PostgresDialect uses $n placeholders and RETURNING, since pgx does not
	// implement LastInsertId.
	PostgresDialect = Dialect{Name: "postgres", Placeholder: sq.Dollar, ReturningID: true}

	// MySQLDialect uses ? placeholders and LastInsertId.
	MySQLDialect = Dialect{Name: "mysql", Placeholder: sq.Question}

	// SQLiteDialect uses ? placeholders and LastInsertId.
	SQLiteDialect = Dialect{Name: "sqlite", Placeholder: sq.Question}
)

// builder returns a squirrel statement builder bound to the dialect's
// placeholder format.
func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder)
}
