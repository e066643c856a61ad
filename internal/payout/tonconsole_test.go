package payout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/service"
)

type stubPayoutConfig struct {
	apiKey  string
	baseURL string
}

func (c stubPayoutConfig) APIKey() string         { return c.apiKey }
func (c stubPayoutConfig) BaseURL() string        { return c.baseURL }
func (c stubPayoutConfig) Timeout() time.Duration { return 5 * time.Second }

func testRequest() *model.WithdrawalRequest {
	return &model.WithdrawalRequest{
		UserID:         7,
		AmountRub:      500,
		Destination:    "1234567890123456",
		IdempotencyKey: "pf_7_abc",
	}
}

func TestPay_Success(t *testing.T) {
	var got payoutPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(stubPayoutConfig{apiKey: "key", baseURL: srv.URL})

	if err := c.Pay(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth != "Bearer key" {
		t.Errorf("bad auth header: %q", auth)
	}
	if got.Amount != 500 || got.Currency != "RUB" || got.Destination != "1234567890123456" {
		t.Errorf("bad payload: %+v", got)
	}
	if got.ExternalID != "pf_7_abc" {
		t.Errorf("idempotency key not passed: %q", got.ExternalID)
	}
}

func TestPay_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	c := NewClient(stubPayoutConfig{apiKey: "key", baseURL: srv.URL})

	err := c.Pay(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error for non-201 status")
	}
	if !strings.Contains(err.Error(), "status 403") || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("provider detail lost: %v", err)
	}
}

func TestPay_MissingAPIKey(t *testing.T) {
	c := NewClient(stubPayoutConfig{apiKey: ""})

	err := c.Pay(context.Background(), testRequest())
	if !errors.Is(err, service.ErrConfigMissing) {
		t.Fatalf("got %v, want ErrConfigMissing", err)
	}
}
