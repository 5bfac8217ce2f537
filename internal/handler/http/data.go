package http

import "encoding/json"

// Request bodies decoded by the route handlers. Field names follow the wire
// vocabulary of the panel (Portuguese), matching the response models.

// createCategoryRequest is the body of POST /estoque/categoria.
type createCategoryRequest struct {
	Nome  string  `json:"nome"`
	Tipo  string  `json:"tipo"`
	Preco float64 `json:"preco"`
}

// addItemsRequest is the body of POST /estoque/{categoria}/itens. Tipo must
// match the category's stored kind.
type addItemsRequest struct {
	Itens []json.RawMessage `json:"itens"`
	Tipo  string            `json:"tipo"`
}

// setPriceRequest is the body of PUT /estoque/{categoria}/preco.
type setPriceRequest struct {
	Preco float64 `json:"preco"`
}

// recordSaleRequest is the body of POST /sales/add.
type recordSaleRequest struct {
	ClienteID   string  `json:"cliente_id"`
	ClienteNome string  `json:"cliente_nome"`
	Produto     string  `json:"produto"`
	Categoria   string  `json:"categoria"`
	Preco       float64 `json:"preco"`
}

// addMemberRequest is the body of POST /equipe.
type addMemberRequest struct {
	Username string `json:"username"`
	Nome     string `json:"nome"`
	Cargo    string `json:"cargo"`
}
