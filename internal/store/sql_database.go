package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/migrations"
)

// DB wraps the raw connection with the pieces repositories need regardless of
// engine: a squirrel builder carrying the driver's placeholder format, the
// driver name for migrations, and a constraint classifier.
type DB struct {
	*sql.DB
	builder     sq.StatementBuilderType
	constraints ConstraintClassifier
	driver      string
	logger      *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
