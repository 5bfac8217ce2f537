package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

// createBackup serves POST /backup/create: snapshots the current inventory.
func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := h.services.BackupService.Create(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BackupCreatedResponse{
		Message:   "backup criado com sucesso",
		ID:        backup.ID,
		Size:      backup.Size,
		CreatedAt: backup.CreatedAt,
	}, http.StatusCreated)
}

// listBackups serves GET /backup/list: the ten most recent snapshots,
// payload-free.
func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.services.BackupService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

// downloadBackup serves GET /backup/download/{id}: the raw snapshot payload
// as a JSON attachment, importable via POST /estoque/import.
func (h *Handler) downloadBackup(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid backup id", http.StatusBadRequest)
		return
	}

	backup, err := h.services.BackupService.Download(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="backup-%d.json"`, backup.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(backup.Data)
}
