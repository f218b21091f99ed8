package middleware

import (
	"context"
	"mining_backend/pkg/logger"
	"mining_backend/pkg/resp"
	"mining_backend/pkg/token"
	"net/http"
	"strings"
)

type userIDKey struct{}

// WithUserID Положить id пользователя в контекст
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext id пользователя, проставленный Auth
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey{}).(int)
	return id, ok
}

// Auth Проверяет access токен из заголовка Authorization: Bearer <token>
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.FromContext(r.Context()).WithError(err).Debug("access token rejected")
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			userID, err := token.UserID(claims)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
