package mining

import (
	"mining_backend/internal/api/common"
	"mining_backend/internal/converter"
	"mining_backend/internal/service"
	"mining_backend/pkg/resp"
	"net/http"
	"strconv"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HandlerDeps struct {
	Serv service.MiningService
}

type Handler struct {
	serv service.MiningService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start забирает выигранный бонус и начинает раунд добычи
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	snap, err := h.serv.StartRound(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRoundResponse(*snap))
}

// Spin планирует спин. Отклонённый запрос - не ошибка, accepted=false
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	result, err := h.serv.Spin(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMiningSpinResponse(*result))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	snap, err := h.serv.State(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*snap))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	if err := h.serv.Reset(r.Context(), userID); err != nil {
		common.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History последние раунды, ?limit=N (по умолчанию 20, не больше 100)
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	limit := uint64(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	rounds, err := h.serv.History(r.Context(), userID, limit)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistory(rounds))
}
