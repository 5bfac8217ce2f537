package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/models"
)

// teamRepository is the SQL-backed implementation of [TeamRepository]. The
// "equipe" table carries a UNIQUE constraint on username; the repository maps
// its violation onto [ErrUsernameAlreadyExists].
type teamRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTeamRepository constructs a [TeamRepository] backed by the provided
// database connection and logger.
func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the full roster in insertion order.
func (r *teamRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "username", "nome", "cargo", "adicionado_em").
		From("equipe").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "teamRepository.List").Msg("failed to query equipe table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.TeamMember, 0)

	for rows.Next() {
		var member models.TeamMember

		if scanErr := rows.Scan(&member.ID, &member.Username, &member.Name, &member.Role, &member.AddedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "teamRepository.List").Msg("failed to scan equipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		members = append(members, member)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "teamRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return members, nil
}

// FindByUsername retrieves one member by exact username.
//
// Returns [ErrMemberNotFound] when no row matches.
func (r *teamRepository) FindByUsername(ctx context.Context, username string) (models.TeamMember, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "username", "nome", "cargo", "adicionado_em").
		From("equipe").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var member models.TeamMember

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&member.ID, &member.Username, &member.Name, &member.Role, &member.AddedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.TeamMember{}, ErrMemberNotFound
		}
		log.Err(scanErr).Str("func", "teamRepository.FindByUsername").Msg("failed to scan equipe row")
		return models.TeamMember{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return member, nil
}

// Add inserts a new roster row and returns it with the database-assigned id
// and timestamp filled in.
//
// Returns [ErrUsernameAlreadyExists] when the username is taken.
func (r *teamRepository) Add(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("equipe").
		Columns("username", "nome", "cargo").
		Values(member.Username, member.Name, member.Role).
		Suffix("RETURNING id, adicionado_em").
		ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&member.ID, &member.AddedAt)
	if scanErr != nil {
		if r.db.constraints.IsUniqueViolation(scanErr) {
			return models.TeamMember{}, ErrUsernameAlreadyExists
		}
		log.Err(scanErr).Str("func", "teamRepository.Add").Str("username", member.Username).Msg("failed to insert equipe row")
		return models.TeamMember{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return member, nil
}

// Remove deletes one roster row by id.
//
// Returns [ErrMemberNotFound] when the id does not exist.
func (r *teamRepository) Remove(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("equipe").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "teamRepository.Remove").Int64("id", id).Msg("failed to delete equipe row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "teamRepository.Remove").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
