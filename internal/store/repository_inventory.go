package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/models"
)

// inventoryRepository is the SQL-backed implementation of
// [InventoryRepository]. Each category is one row of the "estoque" table;
// the item sequence is stored as a JSON array in the "dados" column,
// preserving insertion order.
//
// Single-category mutations touch only their own row. The one exception is
// [ReplaceAll], which keeps the original wholesale-import contract: delete
// everything, reinsert everything, inside one transaction.
type inventoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewInventoryRepository constructs an [InventoryRepository] backed by the
// provided database connection and logger.
func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll reconstructs the full category mapping from storage. There is no
// in-memory cache: every call pays the full storage cost.
func (r *inventoryRepository) GetAll(ctx context.Context) (models.Inventory, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("categoria", "tipo", "dados", "preco").
		From("estoque").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "inventoryRepository.GetAll").Msg("failed to query estoque table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	inventory := make(models.Inventory)

	for rows.Next() {
		var name string
		var category models.Category
		var rawItems []byte

		if scanErr := rows.Scan(&name, &category.Kind, &rawItems, &category.Price); scanErr != nil {
			log.Err(scanErr).Str("func", "inventoryRepository.GetAll").Msg("failed to scan estoque row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if unmarshalErr := json.Unmarshal(rawItems, &category.Items); unmarshalErr != nil {
			log.Err(unmarshalErr).Str("func", "inventoryRepository.GetAll").Str("categoria", name).Msg("failed to decode dados column")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, unmarshalErr)
		}

		inventory[name] = category
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "inventoryRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return inventory, nil
}

// GetCategory retrieves a single category row by name.
//
// Returns [ErrCategoryNotFound] when no row matches.
func (r *inventoryRepository) GetCategory(ctx context.Context, name string) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("tipo", "dados", "preco").
		From("estoque").
		Where("categoria = ?", name).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var category models.Category
	var rawItems []byte

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&category.Kind, &rawItems, &category.Price)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(scanErr).Str("func", "inventoryRepository.GetCategory").Str("categoria", name).Msg("failed to scan estoque row")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	if unmarshalErr := json.Unmarshal(rawItems, &category.Items); unmarshalErr != nil {
		log.Err(unmarshalErr).Str("func", "inventoryRepository.GetCategory").Str("categoria", name).Msg("failed to decode dados column")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, unmarshalErr)
	}

	return category, nil
}

// CreateCategory inserts a new category row.
//
// Error handling:
//   - unique violation on categoria → [ErrCategoryAlreadyExists].
//   - any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *inventoryRepository) CreateCategory(ctx context.Context, name string, category models.Category) error {
	log := logger.FromContext(ctx)

	rawItems, err := marshalItems(category.Items)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Insert("estoque").
		Columns("categoria", "tipo", "dados", "preco").
		Values(name, category.Kind, rawItems, category.Price).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.db.ExecContext(ctx, query, args...); execErr != nil {
		if r.db.constraints.IsUniqueViolation(execErr) {
			return ErrCategoryAlreadyExists
		}
		log.Err(execErr).Str("func", "inventoryRepository.CreateCategory").Str("categoria", name).Msg("failed to insert estoque row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

// SaveItems overwrites the item sequence of an existing category, leaving
// kind and price untouched.
//
// Returns [ErrCategoryNotFound] when the category row does not exist.
func (r *inventoryRepository) SaveItems(ctx context.Context, name string, items []models.Item) error {
	log := logger.FromContext(ctx)

	rawItems, err := marshalItems(items)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Update("estoque").
		Set("dados", rawItems).
		Where("categoria = ?", name).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, log, "inventoryRepository.SaveItems", query, args, ErrCategoryNotFound)
}

// SetPrice updates a category's price in place.
//
// Returns [ErrCategoryNotFound] when the category row does not exist.
func (r *inventoryRepository) SetPrice(ctx context.Context, name string, price float64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("estoque").
		Set("preco", price).
		Where("categoria = ?", name).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, log, "inventoryRepository.SetPrice", query, args, ErrCategoryNotFound)
}

// DeleteCategory removes a category row and all its items.
//
// Returns [ErrCategoryNotFound] when the category row does not exist.
func (r *inventoryRepository) DeleteCategory(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("estoque").
		Where("categoria = ?", name).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, log, "inventoryRepository.DeleteCategory", query, args, ErrCategoryNotFound)
}

// ReplaceAll rewrites the whole estoque table from the given mapping inside
// one transaction: delete everything, reinsert everything. This is the
// wholesale-import path only; ordinary edits go through the per-row methods.
func (r *inventoryRepository) ReplaceAll(ctx context.Context, inventory models.Inventory) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "inventoryRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := r.db.builder.Delete("estoque").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := tx.ExecContext(ctx, deleteQuery, deleteArgs...); execErr != nil {
		log.Err(execErr).Str("func", "inventoryRepository.ReplaceAll").Msg("failed to clear estoque table")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	for name, category := range inventory {
		rawItems, marshalErr := marshalItems(category.Items)
		if marshalErr != nil {
			return marshalErr
		}

		insertQuery, insertArgs, buildErr := r.db.builder.
			Insert("estoque").
			Columns("categoria", "tipo", "dados", "preco").
			Values(name, category.Kind, rawItems, category.Price).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
			log.Err(execErr).Str("func", "inventoryRepository.ReplaceAll").Str("categoria", name).Msg("failed to insert estoque row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "inventoryRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Str("func", "inventoryRepository.ReplaceAll").Int("categorias", len(inventory)).Msg("estoque replaced")

	return nil
}

// execExpectingRow runs a mutation that must affect exactly one row and maps
// the zero-rows case onto the given sentinel.
func (r *inventoryRepository) execExpectingRow(ctx context.Context, log *logger.Logger, caller, query string, args []any, notFound error) error {
	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", caller).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return notFound
	}

	return nil
}

// marshalItems encodes an item sequence for the dados column. A nil slice is
// stored as an empty JSON array so reads never see SQL NULL.
func marshalItems(items []models.Item) ([]byte, error) {
	if items == nil {
		items = []models.Item{}
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return rawItems, nil
}
