package cascade

import (
	"mining_backend/internal/api/common"
	dto "mining_backend/internal/api/dto/cascade"
	"mining_backend/internal/converter"
	"mining_backend/internal/service"
	"mining_backend/pkg/req"
	"mining_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.CascadeService
}

type Handler struct {
	serv service.CascadeService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, converter.ToCascadeSpin(payload))
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCascadeSpinResponse(*result))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.serv.Deposit(r.Context(), userID, payload.Amount)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.StringFixed(2)})
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}

	balance, err := h.serv.Balance(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.StringFixed(2)})
}
