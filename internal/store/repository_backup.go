package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/models"
)

// backupRepository is the SQL-backed implementation of [BackupRepository].
// Snapshots are immutable rows of the "backups" table; nothing is ever
// pruned, List merely caps how many rows the caller sees.
type backupRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBackupRepository constructs a [BackupRepository] backed by the provided
// database connection and logger.
func NewBackupRepository(db *DB, logger *logger.Logger) BackupRepository {
	logger.Debug().Msg("creating backup repository")
	return &backupRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores one snapshot payload and returns the full row with the
// database-assigned id and timestamp filled in. Size is the payload length
// in bytes, computed here so it always matches the stored data.
func (r *backupRepository) Create(ctx context.Context, data []byte) (models.Backup, error) {
	log := logger.FromContext(ctx)

	backup := models.Backup{
		Data: data,
		Size: int64(len(data)),
	}

	query, args, err := r.db.builder.
		Insert("backups").
		Columns("dados", "size").
		Values(data, backup.Size).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&backup.ID, &backup.CreatedAt)
	if scanErr != nil {
		log.Err(scanErr).Str("func", "backupRepository.Create").Msg("failed to insert backups row")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return backup, nil
}

// List returns payload-free summaries of the most recent snapshots, newest
// first, capped at limit rows.
func (r *backupRepository) List(ctx context.Context, limit uint64) ([]models.BackupSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "size", "created_at").
		From("backups").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "backupRepository.List").Msg("failed to query backups table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.BackupSummary, 0, limit)

	for rows.Next() {
		var summary models.BackupSummary

		if scanErr := rows.Scan(&summary.ID, &summary.Size, &summary.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "backupRepository.List").Msg("failed to scan backups row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		summaries = append(summaries, summary)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "backupRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return summaries, nil
}

// Get retrieves one snapshot, payload included.
//
// Returns [ErrBackupNotFound] when the id does not exist.
func (r *backupRepository) Get(ctx context.Context, id int64) (models.Backup, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "dados", "size", "created_at").
		From("backups").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var backup models.Backup
	var data []byte

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&backup.ID, &data, &backup.Size, &backup.CreatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Backup{}, ErrBackupNotFound
		}
		log.Err(scanErr).Str("func", "backupRepository.Get").Int64("id", id).Msg("failed to scan backups row")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	backup.Data = data

	return backup, nil
}
