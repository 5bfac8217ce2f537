package http

import (
	"errors"
	"net/http"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/service"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/internal/utils"
)

// writeServiceError maps a service-layer error chain onto the API's error
// taxonomy: validation and duplicates → 400, missing resources → 404,
// everything else → 500. The response body is always a structured
// {"error": "..."} message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrKindMismatch),
		errors.Is(err, service.ErrNegativePrice):
		log.Err(err).Msg("invalid data provided")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, store.ErrCategoryAlreadyExists),
		errors.Is(err, store.ErrUsernameAlreadyExists):
		log.Err(err).Msg("duplicate resource")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, store.ErrCategoryNotFound),
		errors.Is(err, store.ErrMemberNotFound),
		errors.Is(err, store.ErrBackupNotFound),
		errors.Is(err, service.ErrItemNotFound):
		log.Err(err).Msg("resource not found")
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	default:
		log.Err(err).Msg("unexpected error")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
