package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func respondWithError(w http.ResponseWriter, code int, detail string) {
	respondWithJSON(w, code, ErrorResponse{Detail: detail})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func logWriteError(err error) {
	log.Error().Err(err).Msg("failed to write response")
}
