package auth

import (
	"mining_backend/internal/api/common"
	dto "mining_backend/internal/api/dto/auth"
	"mining_backend/internal/converter"
	"mining_backend/internal/service"
	"mining_backend/pkg/req"
	"mining_backend/pkg/resp"
	"net/http"
	"time"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
)

type HandlerDeps struct {
	Serv            service.AuthService
	RefreshTokenTTL time.Duration
}

type Handler struct {
	serv       service.AuthService
	refreshTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, refreshTTL: deps.RefreshTokenTTL}
}

// Register создаёт пользователя, открывает сессию,
// возвращает access_token, а session_id и refresh_token кладёт в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	h.setSessionCookies(w, data.SessionID, data.RefreshToken)
	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	h.setSessionCookies(w, data.SessionID, data.RefreshToken)
	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдаёт новый access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refresh, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), session.Value, refresh.Value)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		common.WriteError(w, r, err)
		return
	}

	deleteCookie(w, sessionIDCookie, "/")
	deleteCookie(w, refreshTokenCookie, "/auth")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, sessionID, refreshToken string) {
	maxAge := int(h.refreshTTL.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
