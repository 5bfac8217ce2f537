package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/models"
)

// ─────────────────────────────────────────────
// Mock: store.BackupRepository
// ─────────────────────────────────────────────

type mockBackupRepository struct {
	createFn func(ctx context.Context, data []byte) (models.Backup, error)
	listFn   func(ctx context.Context, limit uint64) ([]models.BackupSummary, error)
	getFn    func(ctx context.Context, id int64) (models.Backup, error)
}

func (m *mockBackupRepository) Create(ctx context.Context, data []byte) (models.Backup, error) {
	if m.createFn != nil {
		return m.createFn(ctx, data)
	}
	return models.Backup{ID: 1, Data: data, Size: int64(len(data)), CreatedAt: time.Now()}, nil
}

func (m *mockBackupRepository) List(ctx context.Context, limit uint64) ([]models.BackupSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockBackupRepository) Get(ctx context.Context, id int64) (models.Backup, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Backup{}, store.ErrBackupNotFound
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestBackupService_Create_SnapshotsInventory(t *testing.T) {
	inventoryRepo := newFakeInventoryRepository()
	inventoryRepo.inventory["visa-gold"] = models.Category{
		Kind:  models.KindCard,
		Price: 25.5,
		Items: []models.Item{{ID: "a1", Content: json.RawMessage(`"4111"`)}},
	}

	var stored []byte
	backupRepo := &mockBackupRepository{
		createFn: func(ctx context.Context, data []byte) (models.Backup, error) {
			stored = data
			return models.Backup{ID: 1, Data: data, Size: int64(len(data)), CreatedAt: time.Now()}, nil
		},
	}

	svc := NewBackupService(backupRepo, inventoryRepo, logger.Nop())

	backup, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(stored)), backup.Size)

	// the snapshot payload is the export shape and can round-trip
	var restored models.Inventory
	require.NoError(t, json.Unmarshal(stored, &restored))
	assert.Equal(t, inventoryRepo.inventory, restored)
}

func TestBackupService_List_CapsAtTen(t *testing.T) {
	var gotLimit uint64
	backupRepo := &mockBackupRepository{
		listFn: func(ctx context.Context, limit uint64) ([]models.BackupSummary, error) {
			gotLimit = limit
			return []models.BackupSummary{}, nil
		},
	}
	svc := NewBackupService(backupRepo, newFakeInventoryRepository(), logger.Nop())

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), gotLimit)
}

func TestBackupService_Download_NotFound(t *testing.T) {
	svc := NewBackupService(&mockBackupRepository{}, newFakeInventoryRepository(), logger.Nop())

	_, err := svc.Download(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrBackupNotFound)
}

func TestBackupService_Create_StorageError(t *testing.T) {
	backupRepo := &mockBackupRepository{
		createFn: func(ctx context.Context, data []byte) (models.Backup, error) {
			return models.Backup{}, errors.New("db failure")
		},
	}
	svc := NewBackupService(backupRepo, newFakeInventoryRepository(), logger.Nop())

	_, err := svc.Create(context.Background())
	assert.Error(t, err)
}
