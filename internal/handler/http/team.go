package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

// listTeam serves GET /equipe.
func (h *Handler) listTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.TeamService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, members, http.StatusOK)
}

// addTeamMember serves POST /equipe.
func (h *Handler) addTeamMember(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	added, err := h.services.TeamService.Add(r.Context(), models.TeamMember{
		Username: req.Username,
		Name:     req.Nome,
		Role:     req.Cargo,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MemberAddedResponse{
		Message: "membro adicionado com sucesso",
		Member:  added,
	}, http.StatusCreated)
}

// removeTeamMember serves DELETE /equipe/{id}.
func (h *Handler) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid member id", http.StatusBadRequest)
		return
	}

	if err := h.services.TeamService.Remove(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "membro removido com sucesso"}, http.StatusOK)
}
