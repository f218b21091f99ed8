package resp

import (
	"encoding/json"
	"mining_backend/pkg/logger"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSONResponse Записать статус и тело в JSON
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().WithError(err).Error("failed to encode response")
	}
}

// WriteError Ошибка в виде {"error": "..."}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, errorBody{Error: message})
}
