package models

import "time"

// Sale is one immutable row of the sales ledger. Category is a free-text
// label with no foreign key into the inventory: a sale may reference a
// category that was deleted later.
type Sale struct {
	ID           int64     `json:"id"`
	CustomerID   string    `json:"cliente_id"`
	CustomerName string    `json:"cliente_nome"`
	Product      string    `json:"produto"`
	Category     string    `json:"categoria"`
	Price        float64   `json:"preco"`
	CreatedAt    time.Time `json:"created_at"`
}

// SalesStats aggregates the whole ledger. TodayRevenue covers sales whose
// timestamp falls on the server clock's current calendar day.
type SalesStats struct {
	TotalSales     int64   `json:"total_vendas"`
	TotalRevenue   float64 `json:"receita_total"`
	TotalCustomers int64   `json:"total_clientes"`
	TodayRevenue   float64 `json:"receita_hoje"`
}

// CustomerSummary is one row of the per-customer rollup, grouped by
// (cliente_id, cliente_nome).
type CustomerSummary struct {
	CustomerID     string    `json:"cliente_id"`
	CustomerName   string    `json:"cliente_nome"`
	TotalPurchases int64     `json:"total_compras"`
	TotalSpent     float64   `json:"total_gasto"`
	LastPurchaseAt time.Time `json:"ultima_compra"`
}

// ProductSales counts completed sales of a single product.
type ProductSales struct {
	Product string `json:"produto"`
	Sales   int64  `json:"vendas"`
}

// CustomerSpend is a customer's total spend across the ledger.
type CustomerSpend struct {
	CustomerID   string  `json:"cliente_id"`
	CustomerName string  `json:"cliente_nome"`
	TotalSpent   float64 `json:"total_gasto"`
}

// SalesAnalytics is the top-N view: the five most sold products and the five
// highest-spending customers.
type SalesAnalytics struct {
	TopProducts  []ProductSales  `json:"top_produtos"`
	TopCustomers []CustomerSpend `json:"top_clientes"`
}
