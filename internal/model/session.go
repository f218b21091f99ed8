package model

import "time"

// Session Сессия входа. Сам refresh токен не хранится, только его sha256.
type Session struct {
	ID          string
	UserID      int
	RefreshHash string
	ExpiresAt   time.Time
}
