package helpers

import (
	"encoding/json"
	"net/http"

	"matchdash/internal/models"

	"go.uber.org/zap"
)

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	body, _ := json.Marshal(models.Error{Status: status, Error: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
