package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode - разбирает тело запроса в указанную структуру
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, fmt.Errorf("decode request body: %w", err)
	}
	return payload, nil
}
