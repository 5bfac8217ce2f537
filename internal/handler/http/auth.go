package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/service"
	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong username/password")
			utils.WriteError(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", token.Username).Str("role", token.Role).Msg("operator successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:   token.SignedString,
		Message: "login realizado com sucesso",
		Role:    token.Role,
	}, http.StatusOK)
}
