package common

import (
	"errors"
	"mining_backend/internal/middleware"
	"mining_backend/internal/repository"
	"mining_backend/internal/service/auth"
	"mining_backend/internal/service/cascade"
	"mining_backend/internal/service/mining"
	"mining_backend/pkg/logger"
	"mining_backend/pkg/resp"
	"net/http"
)

// UserID id пользователя из контекста. Если его нет, ответ 401 уже записан.
func UserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return id, true
}

// WriteError Ответ по ошибке сервиса. Неизвестные ошибки логируются и скрываются за 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).WithError(err).Error("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// StatusOf HTTP-статус для ошибки сервиса
func StatusOf(err error) int {
	switch {
	case errors.Is(err, mining.ErrInvalidBet),
		errors.Is(err, mining.ErrInvalidSpinCount),
		errors.Is(err, cascade.ErrInvalidBet),
		errors.Is(err, cascade.ErrBetNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, cascade.ErrNotEnoughBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, mining.ErrNoActiveRound),
		errors.Is(err, mining.ErrNoBonusAvailable),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, mining.ErrRoundInProgress),
		errors.Is(err, auth.ErrLoginTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
