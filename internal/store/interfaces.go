package store

import (
	"context"
	"time"

	"github.com/estoque-digital/estoque-server/models"
)

// InventoryRepository owns the category → items mapping. Single-category
// mutations are individual statements; only ReplaceAll rewrites the whole
// table (wholesale import keeps full-replace semantics).
type InventoryRepository interface {
	GetAll(ctx context.Context) (models.Inventory, error)
	GetCategory(ctx context.Context, name string) (models.Category, error)
	CreateCategory(ctx context.Context, name string, category models.Category) error
	SaveItems(ctx context.Context, name string, items []models.Item) error
	SetPrice(ctx context.Context, name string, price float64) error
	DeleteCategory(ctx context.Context, name string) error
	ReplaceAll(ctx context.Context, inventory models.Inventory) error
}

// SalesRepository is the append-only sales ledger and its denormalized reads.
type SalesRepository interface {
	RecordSale(ctx context.Context, sale models.Sale) (models.Sale, error)
	Totals(ctx context.Context) (totalSales int64, totalRevenue float64, totalCustomers int64, err error)
	RevenueSince(ctx context.Context, since time.Time) (float64, error)
	History(ctx context.Context, limit uint64) ([]models.Sale, error)
	Customers(ctx context.Context) ([]models.CustomerSummary, error)
	TopProducts(ctx context.Context, limit uint64) ([]models.ProductSales, error)
	TopCustomers(ctx context.Context, limit uint64) ([]models.CustomerSpend, error)
}

// TeamRepository is the named-operator roster with username uniqueness.
type TeamRepository interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	FindByUsername(ctx context.Context, username string) (models.TeamMember, error)
	Add(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	Remove(ctx context.Context, id int64) error
}

// BackupRepository stores immutable inventory snapshots. Rows are never
// pruned; List only caps the view.
type BackupRepository interface {
	Create(ctx context.Context, data []byte) (models.Backup, error)
	List(ctx context.Context, limit uint64) ([]models.BackupSummary, error)
	Get(ctx context.Context, id int64) (models.Backup, error)
}

// ConstraintClassifier detects driver-specific constraint violations so
// repositories can map them onto domain sentinels without knowing which SQL
// engine is behind the connection.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool
}
