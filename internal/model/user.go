package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
	Balance  decimal.Decimal
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData Токены и сессия после регистрации/логина
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
