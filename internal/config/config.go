package config

import (
	"time"

	"farm_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type FarmConfig interface {
	CycleLength() time.Duration
	WheelCooldown() time.Duration
	MinWithdrawRub() int
	WithdrawCurrency() string
	DefaultZone() string
	Zones() []model.Zone
	ZoneByID(id string) (model.Zone, bool)
	Rates() map[string]float64
	RateOf(currency string) float64
	Prizes() []model.Prize
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type PayoutConfig interface {
	APIKey() string
	BaseURL() string
	Timeout() time.Duration
}
