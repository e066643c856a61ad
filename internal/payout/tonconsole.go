package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"farm_backend/internal/config"
	"farm_backend/internal/model"
	"farm_backend/internal/service"
)

// Client - клиент выплат Tonconsole (СБП).
// Успехом считается только статус 201, всё остальное - ошибка шлюза
// с текстом провайдера. Таймаут ограничен: истёкший запрос трактуется
// как неизвестный исход, а не как отказ
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(cfg config.PayoutConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey(),
		baseURL: cfg.BaseURL(),
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

type payoutPayload struct {
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	ExternalID  string `json:"external_id"`
}

// Pay - отправляет запрос на выплату
func (c *Client) Pay(ctx context.Context, req *model.WithdrawalRequest) error {
	if c.apiKey == "" {
		return service.ErrConfigMissing
	}

	payload := payoutPayload{
		Amount:      req.AmountRub,
		Currency:    "RUB",
		Destination: req.Destination,
		Description: fmt.Sprintf("Withdrawal for user %d", req.UserID),
		ExternalID:  req.IdempotencyKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payout payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build payout request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send payout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tonconsole error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
