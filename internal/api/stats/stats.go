package stats

import (
	"mining_backend/internal/converter"
	"mining_backend/internal/service"
	"mining_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.StatsService
}

type Handler struct {
	serv service.StatsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// All RTP по обеим играм
func (h *Handler) All(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.All()))
}
