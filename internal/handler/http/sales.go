package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

// recordSale serves POST /sales/add: pure append to the ledger.
func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recorded, err := h.services.SalesService.Record(r.Context(), models.Sale{
		CustomerID:   req.ClienteID,
		CustomerName: req.ClienteNome,
		Product:      req.Produto,
		Category:     req.Categoria,
		Price:        req.Preco,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, recorded, http.StatusCreated)
}

// salesStats serves GET /sales/stats.
func (h *Handler) salesStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.SalesService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// salesHistory serves GET /sales/history?limit=N, newest first.
func (h *Handler) salesHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	sales, err := h.services.SalesService.History(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, sales, http.StatusOK)
}

// salesCustomers serves GET /sales/customers.
func (h *Handler) salesCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.SalesService.Customers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

// salesAnalytics serves GET /sales/analytics: top products and customers.
func (h *Handler) salesAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.SalesService.Analytics(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, analytics, http.StatusOK)
}
