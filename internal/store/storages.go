package store

import (
	"context"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/config"
	"github.com/estoque-digital/estoque-server/internal/logger"
)

// Storages bundles all repositories behind a single construction point.
type Storages struct {
	Inventory InventoryRepository
	Sales     SalesRepository
	Team      TeamRepository
	Backups   BackupRepository
}

// NewStorages connects to the configured SQL backend, runs pending
// migrations and wires every repository onto the shared connection.
//
// The returned *DB is handed back so the caller owns the connection
// lifecycle (Close on shutdown).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		Inventory: NewInventoryRepository(db, log),
		Sales:     NewSalesRepository(db, log),
		Team:      NewTeamRepository(db, log),
		Backups:   NewBackupRepository(db, log),
	}

	return storages, db, nil
}
