package env

import (
	"os"
	"time"

	"farm_backend/internal/config"
)

const (
	payoutKeyEnvName     = "TON_CONSOLE_API_KEY"
	payoutURLEnvName     = "TON_CONSOLE_API_URL"
	payoutTimeoutEnvName = "TON_CONSOLE_TIMEOUT"

	defaultPayoutURL     = "https://api.tonconsole.com/v1/payouts/sbp"
	defaultPayoutTimeout = 30 * time.Second
)

type payoutConfig struct {
	apiKey  string
	baseURL string
	timeout time.Duration
}

// NewPayoutConfig - конфигурация платёжного шлюза.
// Отсутствие API ключа не является ошибкой старта: без него
// упадёт только сам вывод средств, а не весь процесс
func NewPayoutConfig() (config.PayoutConfig, error) {
	cfg := &payoutConfig{
		apiKey:  os.Getenv(payoutKeyEnvName),
		baseURL: os.Getenv(payoutURLEnvName),
		timeout: defaultPayoutTimeout,
	}

	if cfg.baseURL == "" {
		cfg.baseURL = defaultPayoutURL
	}

	if raw := os.Getenv(payoutTimeoutEnvName); raw != "" {
		t, err := time.ParseDuration(raw)
		if err == nil && t > 0 {
			cfg.timeout = t
		}
	}

	return cfg, nil
}

func (cfg *payoutConfig) APIKey() string {
	return cfg.apiKey
}

func (cfg *payoutConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *payoutConfig) Timeout() time.Duration {
	return cfg.timeout
}
