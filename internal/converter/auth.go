package converter

import (
	"mining_backend/internal/api/dto/auth"
	"mining_backend/internal/model"

	"github.com/shopspring/decimal"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		Balance:  decimal.Zero,
	}
}
