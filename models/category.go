package models

import "encoding/json"

// Category kinds. A category holds exactly one kind of item for its whole
// lifetime; the kind is fixed at creation and has no migration path.
const (
	KindCard     = "cartao"
	KindAccount  = "conta"
	KindGiftCard = "giftcard"
)

// ValidKind reports whether kind is one of the supported category kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindCard, KindAccount, KindGiftCard:
		return true
	}
	return false
}

// Item is a single unit of stock inside a category. The payload shape depends
// on the owning category's kind: a raw delimited string for cards
// (number|expiry|cvv), a login/password object for accounts, a raw code
// string for gift cards. Content is kept as raw JSON so all three shapes pass
// through untouched.
//
// ID is a server-generated UUID assigned when the item enters the store.
// It is stable for the item's lifetime: deleting a neighbouring item never
// changes it.
type Item struct {
	ID      string          `json:"id"`
	Content json.RawMessage `json:"content"`
}

// Category is one entry of the inventory mapping. The category name is the
// key of the enclosing [Inventory] map and is not repeated inside the value.
type Category struct {
	Kind  string  `json:"tipo"`
	Price float64 `json:"preco"`
	Items []Item  `json:"itens"`
}

// Inventory is the full category name → category mapping, the unit of
// export, import and backup.
type Inventory map[string]Category

// CategoryStats is the per-category rollup served by the stats endpoint.
type CategoryStats struct {
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
}

// ItemList is the response shape for listing a single category's items.
type ItemList struct {
	Category string `json:"categoria"`
	Kind     string `json:"tipo"`
	Items    []Item `json:"itens"`
}
