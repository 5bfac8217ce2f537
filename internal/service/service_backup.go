package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/models"
)

// backupListLimit caps how many snapshots the list view returns. Older rows
// stay in storage and remain downloadable by id.
const backupListLimit = 10

// backupService is the concrete implementation of BackupService. A snapshot
// is the inventory's export shape serialized to JSON, so a downloaded backup
// can be fed straight back into the import endpoint.
type backupService struct {
	backupRepository    store.BackupRepository
	inventoryRepository store.InventoryRepository
	logger              *logger.Logger
}

// NewBackupService constructs a BackupService backed by the given
// repositories.
func NewBackupService(backupRepository store.BackupRepository, inventoryRepository store.InventoryRepository, logger *logger.Logger) BackupService {
	return &backupService{
		backupRepository:    backupRepository,
		inventoryRepository: inventoryRepository,
		logger:              logger,
	}
}

// Create snapshots the current inventory and stores it as an immutable row.
func (s *backupService) Create(ctx context.Context) (models.Backup, error) {
	log := logger.FromContext(ctx)

	inventory, err := s.inventoryRepository.GetAll(ctx)
	if err != nil {
		return models.Backup{}, fmt.Errorf("inventory snapshot failed: %w", err)
	}

	data, err := json.Marshal(inventory)
	if err != nil {
		return models.Backup{}, fmt.Errorf("snapshot serialization failed: %w", err)
	}

	backup, err := s.backupRepository.Create(ctx, data)
	if err != nil {
		return models.Backup{}, fmt.Errorf("snapshot storage failed: %w", err)
	}

	log.Info().Int64("id", backup.ID).Int64("size", backup.Size).Msg("backup created")

	return backup, nil
}

// List returns payload-free summaries of the ten most recent snapshots.
func (s *backupService) List(ctx context.Context) ([]models.BackupSummary, error) {
	summaries, err := s.backupRepository.List(ctx, backupListLimit)
	if err != nil {
		return nil, fmt.Errorf("backup listing failed: %w", err)
	}

	return summaries, nil
}

// Download retrieves one snapshot with its full payload.
func (s *backupService) Download(ctx context.Context, id int64) (models.Backup, error) {
	backup, err := s.backupRepository.Get(ctx, id)
	if err != nil {
		return models.Backup{}, fmt.Errorf("backup retrieval failed: %w", err)
	}

	return backup, nil
}
