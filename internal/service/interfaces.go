package service

import (
	"context"
	"encoding/json"

	"github.com/estoque-digital/estoque-server/models"
)

// AuthService authenticates operators against the configured shared secrets
// and manages the JWT session token lifecycle.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// InventoryService owns the category → items mapping and its import/export
// views.
type InventoryService interface {
	ListAll(ctx context.Context) (models.Inventory, error)
	Stats(ctx context.Context) (map[string]models.CategoryStats, error)

	CreateCategory(ctx context.Context, name, kind string, price float64) error
	SetPrice(ctx context.Context, name string, price float64) error
	DeleteCategory(ctx context.Context, name string) error

	AddItems(ctx context.Context, name, kind string, contents []json.RawMessage) ([]models.Item, error)
	ListItems(ctx context.Context, name string) (models.ItemList, error)
	DeleteItem(ctx context.Context, name, itemID string) error
	ClearItems(ctx context.Context, name string) error

	Export(ctx context.Context) (models.Inventory, error)
	Import(ctx context.Context, inventory models.Inventory) error
}

// SalesService is the append-only ledger and its aggregate views.
type SalesService interface {
	Record(ctx context.Context, sale models.Sale) (models.Sale, error)
	Stats(ctx context.Context) (models.SalesStats, error)
	History(ctx context.Context, limit int) ([]models.Sale, error)
	Customers(ctx context.Context) ([]models.CustomerSummary, error)
	Analytics(ctx context.Context) (models.SalesAnalytics, error)
}

// BackupService snapshots the inventory and serves stored snapshots back.
type BackupService interface {
	Create(ctx context.Context) (models.Backup, error)
	List(ctx context.Context) ([]models.BackupSummary, error)
	Download(ctx context.Context, id int64) (models.Backup, error)
}

// TeamService manages the named-operator roster.
type TeamService interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Add(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	Remove(ctx context.Context, id int64) error
}
