package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// PostgresConstraintClassifier implements [ConstraintClassifier] for
// PostgreSQL by inspecting the pgconn error code returned by the pgx driver.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
type PostgresConstraintClassifier struct{}

// NewPostgresConstraintClassifier constructs a [PostgresConstraintClassifier]
// ready for use.
func NewPostgresConstraintClassifier() *PostgresConstraintClassifier {
	return &PostgresConstraintClassifier{}
}

// IsUniqueViolation reports whether err carries PostgreSQL error code 23505
// (unique_violation).
func (c *PostgresConstraintClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for SQLite by
// inspecting the extended error code returned by go-sqlite3.
type SQLiteConstraintClassifier struct{}

// NewSQLiteConstraintClassifier constructs a [SQLiteConstraintClassifier]
// ready for use.
func NewSQLiteConstraintClassifier() *SQLiteConstraintClassifier {
	return &SQLiteConstraintClassifier{}
}

// IsUniqueViolation reports whether err is a SQLITE_CONSTRAINT_UNIQUE (or
// SQLITE_CONSTRAINT_PRIMARYKEY) violation.
func (c *SQLiteConstraintClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
