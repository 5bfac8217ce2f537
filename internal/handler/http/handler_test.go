package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/service"
	"github.com/estoque-digital/estoque-server/models"
)

// ─────────────────────────────────────────────
// Mock services
//
// Each method field can be overridden per test case; unset fields fall back
// to harmless zero-value behavior.
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn      func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

type mockInventoryService struct {
	listAllFn        func(ctx context.Context) (models.Inventory, error)
	statsFn          func(ctx context.Context) (map[string]models.CategoryStats, error)
	createCategoryFn func(ctx context.Context, name, kind string, price float64) error
	setPriceFn       func(ctx context.Context, name string, price float64) error
	deleteCategoryFn func(ctx context.Context, name string) error
	addItemsFn       func(ctx context.Context, name, kind string, contents []json.RawMessage) ([]models.Item, error)
	listItemsFn      func(ctx context.Context, name string) (models.ItemList, error)
	deleteItemFn     func(ctx context.Context, name, itemID string) error
	clearItemsFn     func(ctx context.Context, name string) error
	exportFn         func(ctx context.Context) (models.Inventory, error)
	importFn         func(ctx context.Context, inventory models.Inventory) error
}

func (m *mockInventoryService) ListAll(ctx context.Context) (models.Inventory, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return models.Inventory{}, nil
}

func (m *mockInventoryService) Stats(ctx context.Context) (map[string]models.CategoryStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return map[string]models.CategoryStats{}, nil
}

func (m *mockInventoryService) CreateCategory(ctx context.Context, name, kind string, price float64) error {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, name, kind, price)
	}
	return nil
}

func (m *mockInventoryService) SetPrice(ctx context.Context, name string, price float64) error {
	if m.setPriceFn != nil {
		return m.setPriceFn(ctx, name, price)
	}
	return nil
}

func (m *mockInventoryService) DeleteCategory(ctx context.Context, name string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, name)
	}
	return nil
}

func (m *mockInventoryService) AddItems(ctx context.Context, name, kind string, contents []json.RawMessage) ([]models.Item, error) {
	if m.addItemsFn != nil {
		return m.addItemsFn(ctx, name, kind, contents)
	}
	return nil, nil
}

func (m *mockInventoryService) ListItems(ctx context.Context, name string) (models.ItemList, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx, name)
	}
	return models.ItemList{}, nil
}

func (m *mockInventoryService) DeleteItem(ctx context.Context, name, itemID string) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, name, itemID)
	}
	return nil
}

func (m *mockInventoryService) ClearItems(ctx context.Context, name string) error {
	if m.clearItemsFn != nil {
		return m.clearItemsFn(ctx, name)
	}
	return nil
}

func (m *mockInventoryService) Export(ctx context.Context) (models.Inventory, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx)
	}
	return models.Inventory{}, nil
}

func (m *mockInventoryService) Import(ctx context.Context, inventory models.Inventory) error {
	if m.importFn != nil {
		return m.importFn(ctx, inventory)
	}
	return nil
}

type mockSalesService struct {
	recordFn    func(ctx context.Context, sale models.Sale) (models.Sale, error)
	statsFn     func(ctx context.Context) (models.SalesStats, error)
	historyFn   func(ctx context.Context, limit int) ([]models.Sale, error)
	customersFn func(ctx context.Context) ([]models.CustomerSummary, error)
	analyticsFn func(ctx context.Context) (models.SalesAnalytics, error)
}

func (m *mockSalesService) Record(ctx context.Context, sale models.Sale) (models.Sale, error) {
	if m.recordFn != nil {
		return m.recordFn(ctx, sale)
	}
	return sale, nil
}

func (m *mockSalesService) Stats(ctx context.Context) (models.SalesStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.SalesStats{}, nil
}

func (m *mockSalesService) History(ctx context.Context, limit int) ([]models.Sale, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockSalesService) Customers(ctx context.Context) ([]models.CustomerSummary, error) {
	if m.customersFn != nil {
		return m.customersFn(ctx)
	}
	return nil, nil
}

func (m *mockSalesService) Analytics(ctx context.Context) (models.SalesAnalytics, error) {
	if m.analyticsFn != nil {
		return m.analyticsFn(ctx)
	}
	return models.SalesAnalytics{}, nil
}

type mockBackupService struct {
	createFn   func(ctx context.Context) (models.Backup, error)
	listFn     func(ctx context.Context) ([]models.BackupSummary, error)
	downloadFn func(ctx context.Context, id int64) (models.Backup, error)
}

func (m *mockBackupService) Create(ctx context.Context) (models.Backup, error) {
	if m.createFn != nil {
		return m.createFn(ctx)
	}
	return models.Backup{}, nil
}

func (m *mockBackupService) List(ctx context.Context) ([]models.BackupSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockBackupService) Download(ctx context.Context, id int64) (models.Backup, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, id)
	}
	return models.Backup{}, nil
}

type mockTeamService struct {
	listFn   func(ctx context.Context) ([]models.TeamMember, error)
	addFn    func(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	removeFn func(ctx context.Context, id int64) error
}

func (m *mockTeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTeamService) Add(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	if m.addFn != nil {
		return m.addFn(ctx, member)
	}
	return member, nil
}

func (m *mockTeamService) Remove(ctx context.Context, id int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices bundles one mock per service; tests override the fields they
// care about.
type testServices struct {
	auth      *mockAuthService
	inventory *mockInventoryService
	sales     *mockSalesService
	backup    *mockBackupService
	team      *mockTeamService
}

func newTestServices() *testServices {
	return &testServices{
		auth:      &mockAuthService{},
		inventory: &mockInventoryService{},
		sales:     &mockSalesService{},
		backup:    &mockBackupService{},
		team:      &mockTeamService{},
	}
}

func newTestHandler(t *testing.T, mocks *testServices) *Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:      mocks.auth,
		InventoryService: mocks.inventory,
		SalesService:     mocks.sales,
		BackupService:    mocks.backup,
		TeamService:      mocks.team,
	}

	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return string(b)
}
