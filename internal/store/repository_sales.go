package store

import (
	"context"
	"fmt"
	"time"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/models"
)

// salesRepository is the SQL-backed implementation of [SalesRepository].
// The "vendas" table is append-only: rows are inserted by RecordSale and
// never updated or deleted, so every read view is a pure aggregation.
type salesRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSalesRepository constructs a [SalesRepository] backed by the provided
// database connection and logger.
func NewSalesRepository(db *DB, logger *logger.Logger) SalesRepository {
	logger.Debug().Msg("creating sales repository")
	return &salesRepository{
		db:     db,
		logger: logger,
	}
}

// RecordSale appends one row to the ledger and returns it with the
// database-assigned id and timestamp filled in.
func (r *salesRepository) RecordSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("vendas").
		Columns("cliente_id", "cliente_nome", "produto", "categoria", "preco").
		Values(sale.CustomerID, sale.CustomerName, sale.Product, sale.Category, sale.Price).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt)
	if scanErr != nil {
		log.Err(scanErr).Str("func", "salesRepository.RecordSale").Msg("failed to insert vendas row")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return sale, nil
}

// Totals aggregates the whole ledger in a single scan: row count, revenue
// sum and the number of distinct customer ids.
func (r *salesRepository) Totals(ctx context.Context) (totalSales int64, totalRevenue float64, totalCustomers int64, err error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(preco), 0)",
			"COUNT(DISTINCT cliente_id)",
		).
		From("vendas").
		ToSql()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&totalSales, &totalRevenue, &totalCustomers)
	if scanErr != nil {
		log.Err(scanErr).Str("func", "salesRepository.Totals").Msg("failed to aggregate vendas table")
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return totalSales, totalRevenue, totalCustomers, nil
}

// RevenueSince sums the revenue of sales recorded at or after the given
// instant. The caller decides what "since" means (midnight, last hour, ...).
func (r *salesRepository) RevenueSince(ctx context.Context, since time.Time) (float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COALESCE(SUM(preco), 0)").
		From("vendas").
		Where("created_at >= ?", since).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var revenue float64
	scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&revenue)
	if scanErr != nil {
		log.Err(scanErr).Str("func", "salesRepository.RevenueSince").Msg("failed to aggregate vendas table")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return revenue, nil
}

// History returns the most recent sales first, capped at limit rows.
func (r *salesRepository) History(ctx context.Context, limit uint64) ([]models.Sale, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "cliente_id", "cliente_nome", "produto", "categoria", "preco", "created_at").
		From("vendas").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "salesRepository.History").Msg("failed to query vendas table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0, limit)

	for rows.Next() {
		var sale models.Sale

		if scanErr := rows.Scan(&sale.ID, &sale.CustomerID, &sale.CustomerName, &sale.Product, &sale.Category, &sale.Price, &sale.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "salesRepository.History").Msg("failed to scan vendas row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		sales = append(sales, sale)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "salesRepository.History").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sales, nil
}

// Customers rolls the ledger up per (cliente_id, cliente_nome) pair: purchase
// count, total spend and last purchase timestamp, biggest spenders first.
func (r *salesRepository) Customers(ctx context.Context) ([]models.CustomerSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(
			"cliente_id",
			"cliente_nome",
			"COUNT(*) AS total_compras",
			"COALESCE(SUM(preco), 0) AS total_gasto",
			"MAX(created_at) AS ultima_compra",
		).
		From("vendas").
		GroupBy("cliente_id", "cliente_nome").
		OrderBy("total_gasto DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "salesRepository.Customers").Msg("failed to query vendas table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.CustomerSummary, 0)

	for rows.Next() {
		var customer models.CustomerSummary
		var lastPurchase string

		// MAX() strips the column's declared type, so SQLite hands the
		// timestamp back as its stored text instead of time.Time. Scan
		// through a string and parse it ourselves on both engines.
		if scanErr := rows.Scan(&customer.CustomerID, &customer.CustomerName, &customer.TotalPurchases, &customer.TotalSpent, &lastPurchase); scanErr != nil {
			log.Err(scanErr).Str("func", "salesRepository.Customers").Msg("failed to scan vendas rollup row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		ts, parseErr := parseStoredTimestamp(lastPurchase)
		if parseErr != nil {
			log.Err(parseErr).Str("func", "salesRepository.Customers").Msg("failed to parse ultima_compra timestamp")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, parseErr)
		}
		customer.LastPurchaseAt = ts

		customers = append(customers, customer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "salesRepository.Customers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}

// storedTimestampLayouts covers the shapes an aggregated timestamp comes back
// in: database/sql reformats a driver time.Time as RFC 3339, go-sqlite3
// returns the stored text verbatim (with or without fraction and offset,
// depending on whether the row was written by a bind or by CURRENT_TIMESTAMP).
var storedTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// parseStoredTimestamp parses a timestamp scanned as text. Values without an
// offset are treated as UTC, matching how the drivers store them.
func parseStoredTimestamp(value string) (time.Time, error) {
	for _, layout := range storedTimestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// TopProducts returns the limit most sold products by sale count.
func (r *salesRepository) TopProducts(ctx context.Context, limit uint64) ([]models.ProductSales, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("produto", "COUNT(*) AS vendas").
		From("vendas").
		GroupBy("produto").
		OrderBy("vendas DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "salesRepository.TopProducts").Msg("failed to query vendas table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.ProductSales, 0, limit)

	for rows.Next() {
		var product models.ProductSales

		if scanErr := rows.Scan(&product.Product, &product.Sales); scanErr != nil {
			log.Err(scanErr).Str("func", "salesRepository.TopProducts").Msg("failed to scan vendas rollup row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "salesRepository.TopProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// TopCustomers returns the limit highest-spending customers.
func (r *salesRepository) TopCustomers(ctx context.Context, limit uint64) ([]models.CustomerSpend, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("cliente_id", "cliente_nome", "COALESCE(SUM(preco), 0) AS total_gasto").
		From("vendas").
		GroupBy("cliente_id", "cliente_nome").
		OrderBy("total_gasto DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "salesRepository.TopCustomers").Msg("failed to query vendas table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.CustomerSpend, 0, limit)

	for rows.Next() {
		var customer models.CustomerSpend

		if scanErr := rows.Scan(&customer.CustomerID, &customer.CustomerName, &customer.TotalSpent); scanErr != nil {
			log.Err(scanErr).Str("func", "salesRepository.TopCustomers").Msg("failed to scan vendas rollup row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		customers = append(customers, customer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "salesRepository.TopCustomers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}
