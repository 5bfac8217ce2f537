package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

// inventoryService is the concrete implementation of InventoryService.
//
// Items receive a server-generated UUID when they enter the store and keep it
// for life: removing an item never renumbers its neighbours. Item payloads
// are opaque raw JSON; the service only validates the category kind around
// them.
type inventoryService struct {
	inventoryRepository store.InventoryRepository
	ids                 *utils.UUIDGenerator
	logger              *logger.Logger
}

// NewInventoryService constructs an InventoryService backed by the given
// repository.
func NewInventoryService(inventoryRepository store.InventoryRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		ids:                 utils.NewUUIDGenerator(),
		logger:              logger,
	}
}

// ListAll returns the full category mapping.
func (s *inventoryService) ListAll(ctx context.Context) (models.Inventory, error) {
	inventory, err := s.inventoryRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory listing failed: %w", err)
	}

	return inventory, nil
}

// Stats returns the per-category quantity and price rollup. Every category
// appears, including empty ones.
func (s *inventoryService) Stats(ctx context.Context) (map[string]models.CategoryStats, error) {
	inventory, err := s.inventoryRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory listing failed: %w", err)
	}

	stats := make(map[string]models.CategoryStats, len(inventory))
	for name, category := range inventory {
		stats[name] = models.CategoryStats{
			Quantity: len(category.Items),
			Price:    category.Price,
		}
	}

	return stats, nil
}

// CreateCategory registers a new empty category.
//
// Returns ErrInvalidDataProvided on an empty name, ErrUnknownKind on an
// unsupported kind, ErrNegativePrice on a negative price, or
// store.ErrCategoryAlreadyExists when the name is taken.
func (s *inventoryService) CreateCategory(ctx context.Context, name, kind string, price float64) error {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("empty category name")
		return ErrInvalidDataProvided
	}
	if !models.ValidKind(kind) {
		log.Error().Str("categoria", name).Str("tipo", kind).Msg("unknown category kind")
		return ErrUnknownKind
	}
	if price < 0 {
		log.Error().Str("categoria", name).Float64("preco", price).Msg("negative price")
		return ErrNegativePrice
	}

	category := models.Category{
		Kind:  kind,
		Price: price,
		Items: []models.Item{},
	}

	if err := s.inventoryRepository.CreateCategory(ctx, name, category); err != nil {
		return fmt.Errorf("category creation failed: %w", err)
	}

	return nil
}

// SetPrice updates a category's unit price.
func (s *inventoryService) SetPrice(ctx context.Context, name string, price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}

	if err := s.inventoryRepository.SetPrice(ctx, name, price); err != nil {
		return fmt.Errorf("price update failed: %w", err)
	}

	return nil
}

// DeleteCategory removes a category and everything inside it.
func (s *inventoryService) DeleteCategory(ctx context.Context, name string) error {
	if err := s.inventoryRepository.DeleteCategory(ctx, name); err != nil {
		return fmt.Errorf("category deletion failed: %w", err)
	}

	return nil
}

// AddItems appends items to an existing category, preserving the order in
// which they were submitted. Each item receives a fresh UUID.
//
// The submitted kind must equal the category's stored kind; anything else,
// including an omitted kind, returns ErrKindMismatch and nothing is stored.
func (s *inventoryService) AddItems(ctx context.Context, name, kind string, contents []json.RawMessage) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if len(contents) == 0 {
		return nil, ErrInvalidDataProvided
	}

	category, err := s.inventoryRepository.GetCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}

	if kind != category.Kind {
		log.Error().Str("categoria", name).Str("tipo", kind).Str("categoria_tipo", category.Kind).Msg("item kind mismatch")
		return nil, ErrKindMismatch
	}

	added := make([]models.Item, 0, len(contents))
	for _, content := range contents {
		added = append(added, models.Item{ID: s.ids.Generate(), Content: content})
	}

	items := append(category.Items, added...)
	if err := s.inventoryRepository.SaveItems(ctx, name, items); err != nil {
		return nil, fmt.Errorf("item save failed: %w", err)
	}

	log.Info().Str("categoria", name).Int("adicionados", len(added)).Msg("items added")

	return added, nil
}

// ListItems returns a single category's item sequence in stored order.
func (s *inventoryService) ListItems(ctx context.Context, name string) (models.ItemList, error) {
	category, err := s.inventoryRepository.GetCategory(ctx, name)
	if err != nil {
		return models.ItemList{}, fmt.Errorf("category lookup failed: %w", err)
	}

	return models.ItemList{
		Category: name,
		Kind:     category.Kind,
		Items:    category.Items,
	}, nil
}

// DeleteItem removes exactly one item from a category, addressed by its
// stable id. All other items keep their ids and relative order.
//
// Returns ErrItemNotFound when no item in the category carries the id.
func (s *inventoryService) DeleteItem(ctx context.Context, name, itemID string) error {
	log := logger.FromContext(ctx)

	category, err := s.inventoryRepository.GetCategory(ctx, name)
	if err != nil {
		return fmt.Errorf("category lookup failed: %w", err)
	}

	remaining := make([]models.Item, 0, len(category.Items))
	found := false
	for _, item := range category.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}

	if !found {
		log.Error().Str("categoria", name).Str("item_id", itemID).Msg("item not found")
		return ErrItemNotFound
	}

	if err := s.inventoryRepository.SaveItems(ctx, name, remaining); err != nil {
		return fmt.Errorf("item save failed: %w", err)
	}

	return nil
}

// ClearItems empties a category's item sequence, keeping the category row.
func (s *inventoryService) ClearItems(ctx context.Context, name string) error {
	if err := s.inventoryRepository.SaveItems(ctx, name, []models.Item{}); err != nil {
		return fmt.Errorf("item save failed: %w", err)
	}

	return nil
}

// Export returns the full inventory mapping in its canonical shape, ready to
// be imported back.
func (s *inventoryService) Export(ctx context.Context) (models.Inventory, error) {
	return s.ListAll(ctx)
}

// Import replaces the whole inventory with the given mapping. Items that
// arrive without an id receive a fresh one; items that carry an id keep it,
// so an export→import round trip is a fixed point.
//
// Returns ErrUnknownKind if any category carries an unsupported kind; nothing
// is written in that case.
func (s *inventoryService) Import(ctx context.Context, inventory models.Inventory) error {
	log := logger.FromContext(ctx)

	for name, category := range inventory {
		if !models.ValidKind(category.Kind) {
			log.Error().Str("categoria", name).Str("tipo", category.Kind).Msg("unknown category kind in import")
			return ErrUnknownKind
		}

		for i := range category.Items {
			if category.Items[i].ID == "" {
				category.Items[i].ID = s.ids.Generate()
			}
		}
		inventory[name] = category
	}

	if err := s.inventoryRepository.ReplaceAll(ctx, inventory); err != nil {
		return fmt.Errorf("inventory import failed: %w", err)
	}

	log.Info().Int("categorias", len(inventory)).Msg("inventory imported")

	return nil
}
