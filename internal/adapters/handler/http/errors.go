package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/rs/zerolog"
)

// writeError maps domain errors to status codes. Unknown errors are logged
// and reported as a generic server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrCatalogEmpty):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrRoomClosed),
		errors.Is(err, domain.ErrRoomOpen),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidRoomID),
		errors.Is(err, domain.ErrInvalidCategory):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
