package service

import (
	"context"
	"fmt"
	"time"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/models"
)

// History paging bounds. The endpoint serves at most historyMaxLimit rows per
// call and falls back to historyDefaultLimit when the caller sends no limit.
const (
	historyDefaultLimit = 50
	historyMaxLimit     = 50
)

// topListSize is the N of the top-products and top-customers views.
const topListSize = 5

// salesService is the concrete implementation of SalesService. The ledger is
// append-only: recording is the only write, every other method aggregates.
type salesService struct {
	salesRepository store.SalesRepository
	logger          *logger.Logger

	// now is swappable in tests so "today" is deterministic.
	now func() time.Time
}

// NewSalesService constructs a SalesService backed by the given repository.
func NewSalesService(salesRepository store.SalesRepository, logger *logger.Logger) SalesService {
	return &salesService{
		salesRepository: salesRepository,
		logger:          logger,
		now:             time.Now,
	}
}

// Record appends one sale to the ledger. The sale's category is a free-text
// label: it is not checked against the inventory, and deleting a category
// later never touches recorded sales.
//
// Returns ErrInvalidDataProvided when the product name is empty and
// ErrNegativePrice on a negative price.
func (s *salesService) Record(ctx context.Context, sale models.Sale) (models.Sale, error) {
	log := logger.FromContext(ctx)

	if sale.Product == "" {
		log.Error().Msg("empty product name")
		return models.Sale{}, ErrInvalidDataProvided
	}
	if sale.Price < 0 {
		log.Error().Str("produto", sale.Product).Float64("preco", sale.Price).Msg("negative sale price")
		return models.Sale{}, ErrNegativePrice
	}

	recorded, err := s.salesRepository.RecordSale(ctx, sale)
	if err != nil {
		return models.Sale{}, fmt.Errorf("sale recording failed: %w", err)
	}

	log.Info().Int64("id", recorded.ID).Str("produto", recorded.Product).Float64("preco", recorded.Price).Msg("sale recorded")

	return recorded, nil
}

// Stats aggregates the whole ledger. TodayRevenue covers sales recorded since
// midnight of the server clock's current calendar day.
func (s *salesService) Stats(ctx context.Context) (models.SalesStats, error) {
	totalSales, totalRevenue, totalCustomers, err := s.salesRepository.Totals(ctx)
	if err != nil {
		return models.SalesStats{}, fmt.Errorf("ledger aggregation failed: %w", err)
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayRevenue, err := s.salesRepository.RevenueSince(ctx, midnight)
	if err != nil {
		return models.SalesStats{}, fmt.Errorf("ledger aggregation failed: %w", err)
	}

	return models.SalesStats{
		TotalSales:     totalSales,
		TotalRevenue:   totalRevenue,
		TotalCustomers: totalCustomers,
		TodayRevenue:   todayRevenue,
	}, nil
}

// History returns the most recent sales first. A non-positive limit falls
// back to the default; anything above the cap is clamped.
func (s *salesService) History(ctx context.Context, limit int) ([]models.Sale, error) {
	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	sales, err := s.salesRepository.History(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("ledger history failed: %w", err)
	}

	return sales, nil
}

// Customers returns the per-customer rollup, biggest spenders first.
func (s *salesService) Customers(ctx context.Context) ([]models.CustomerSummary, error) {
	customers, err := s.salesRepository.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer rollup failed: %w", err)
	}

	return customers, nil
}

// Analytics returns the top-5 products by sale count and the top-5 customers
// by total spend.
func (s *salesService) Analytics(ctx context.Context) (models.SalesAnalytics, error) {
	products, err := s.salesRepository.TopProducts(ctx, topListSize)
	if err != nil {
		return models.SalesAnalytics{}, fmt.Errorf("analytics aggregation failed: %w", err)
	}

	customers, err := s.salesRepository.TopCustomers(ctx, topListSize)
	if err != nil {
		return models.SalesAnalytics{}, fmt.Errorf("analytics aggregation failed: %w", err)
	}

	return models.SalesAnalytics{
		TopProducts:  products,
		TopCustomers: customers,
	}, nil
}
