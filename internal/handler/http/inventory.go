package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

// listInventory serves GET /estoque: the full category → items mapping.
func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.services.InventoryService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, inventory, http.StatusOK)
}

// inventoryStats serves GET /estoque/stats: per-category quantity and price.
func (h *Handler) inventoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.InventoryService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// createCategory serves POST /estoque/categoria.
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.InventoryService.CreateCategory(r.Context(), req.Nome, req.Tipo, req.Preco); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "categoria criada com sucesso"}, http.StatusCreated)
}

// addItems serves POST /estoque/{categoria}/itens.
func (h *Handler) addItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "categoria")

	var req addItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	added, err := h.services.InventoryService.AddItems(r.Context(), name, req.Tipo, req.Itens)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemsAddedResponse{
		Message: "itens adicionados com sucesso",
		Added:   len(added),
	}, http.StatusOK)
}

// listItems serves GET /estoque/{categoria}/itens.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "categoria")

	list, err := h.services.InventoryService.ListItems(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// setPrice serves PUT /estoque/{categoria}/preco.
func (h *Handler) setPrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "categoria")

	var req setPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.InventoryService.SetPrice(r.Context(), name, req.Preco); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "preço atualizado com sucesso"}, http.StatusOK)
}

// clearItems serves DELETE /estoque/{categoria}/limpar: empties the item
// sequence but keeps the category.
func (h *Handler) clearItems(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "categoria")

	if err := h.services.InventoryService.ClearItems(r.Context(), name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "categoria esvaziada com sucesso"}, http.StatusOK)
}

// deleteCategory serves DELETE /estoque/{categoria}.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "categoria")

	if err := h.services.InventoryService.DeleteCategory(r.Context(), name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "categoria removida com sucesso"}, http.StatusOK)
}

// deleteItem serves DELETE /estoque/{categoria}/item/{id}. Items are
// addressed by their stable id, never by position.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "categoria")
	itemID := chi.URLParam(r, "id")

	if err := h.services.InventoryService.DeleteItem(r.Context(), name, itemID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "item removido com sucesso"}, http.StatusOK)
}

// importInventory serves POST /estoque/import: wholesale replace of the
// entire mapping.
func (h *Handler) importInventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var inventory models.Inventory
	if err := json.NewDecoder(r.Body).Decode(&inventory); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.InventoryService.Import(r.Context(), inventory); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "estoque importado com sucesso"}, http.StatusOK)
}

// exportInventory serves GET /estoque/export: the same mapping shape as
// GET /estoque, offered as a download.
func (h *Handler) exportInventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.services.InventoryService.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="estoque.json"`)
	utils.WriteJSON(w, inventory, http.StatusOK)
}
