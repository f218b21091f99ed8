package req

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode Прочитать JSON тело и проверить теги validate
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode body: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("validate body: %w", err)
	}
	return payload, nil
}
