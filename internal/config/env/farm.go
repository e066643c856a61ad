package env

import (
	"fmt"
	"os"
	"time"

	"farm_backend/internal/config"
	"farm_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// Структуры для разбора config.yaml
type farmYAML struct {
	Farm struct {
		Cycle            string `yaml:"cycle"`
		WheelCooldown    string `yaml:"wheel_cooldown"`
		MinWithdrawRub   int    `yaml:"min_withdraw_rub"`
		WithdrawCurrency string `yaml:"withdraw_currency"`
		DefaultZone      string `yaml:"default_zone"`
	} `yaml:"farm"`
	Zones []struct {
		ID       string  `yaml:"id"`
		Name     string  `yaml:"name"`
		Currency string  `yaml:"currency"`
		Rate     float64 `yaml:"rate"`
	} `yaml:"zones"`
	Rates  map[string]float64 `yaml:"rates"`
	Prizes []struct {
		Type       string  `yaml:"type"`
		Currency   string  `yaml:"currency"`
		Amount     float64 `yaml:"amount"`
		Multiplier float64 `yaml:"multiplier"`
		Duration   string  `yaml:"duration"`
		Desc       string  `yaml:"desc"`
	} `yaml:"prizes"`
}

type farmConfig struct {
	cycle            time.Duration
	wheelCooldown    time.Duration
	minWithdrawRub   int
	withdrawCurrency string
	defaultZone      string
	zones            []model.Zone
	zoneIndex        map[string]model.Zone
	rates            map[string]float64
	prizes           []model.Prize
}

// NewFarmConfigFromYAML - загружает игровую конфигурацию (зоны, призы, курсы)
// из YAML файла. Конфигурация неизменяема после загрузки
func NewFarmConfigFromYAML(path string) (config.FarmConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read farm config: %w", err)
	}

	var parsed farmYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse farm config: %w", err)
	}

	cycle, err := time.ParseDuration(parsed.Farm.Cycle)
	if err != nil || cycle <= 0 {
		return nil, fmt.Errorf("invalid farm cycle %q", parsed.Farm.Cycle)
	}

	cooldown, err := time.ParseDuration(parsed.Farm.WheelCooldown)
	if err != nil || cooldown <= 0 {
		return nil, fmt.Errorf("invalid wheel cooldown %q", parsed.Farm.WheelCooldown)
	}

	if parsed.Farm.MinWithdrawRub <= 0 {
		return nil, fmt.Errorf("invalid min withdraw amount %d", parsed.Farm.MinWithdrawRub)
	}

	if len(parsed.Zones) == 0 {
		return nil, fmt.Errorf("no zones configured")
	}

	cfg := &farmConfig{
		cycle:            cycle,
		wheelCooldown:    cooldown,
		minWithdrawRub:   parsed.Farm.MinWithdrawRub,
		withdrawCurrency: parsed.Farm.WithdrawCurrency,
		defaultZone:      parsed.Farm.DefaultZone,
		zoneIndex:        make(map[string]model.Zone, len(parsed.Zones)),
		rates:            parsed.Rates,
	}

	for _, z := range parsed.Zones {
		zone := model.Zone{
			ID:       z.ID,
			Name:     z.Name,
			Currency: z.Currency,
			Rate:     z.Rate,
		}
		if zone.ID == "" || zone.Rate <= 0 {
			return nil, fmt.Errorf("invalid zone %+v", z)
		}
		// У каждой зоны должен быть курс её валюты
		if _, ok := cfg.rates[zone.Currency]; !ok {
			return nil, fmt.Errorf("no rate for currency %s of zone %s", zone.Currency, zone.ID)
		}
		cfg.zones = append(cfg.zones, zone)
		cfg.zoneIndex[zone.ID] = zone
	}

	if _, ok := cfg.zoneIndex[cfg.defaultZone]; !ok {
		return nil, fmt.Errorf("default zone %q is not in zone list", cfg.defaultZone)
	}

	if _, ok := cfg.rates[cfg.withdrawCurrency]; !ok {
		return nil, fmt.Errorf("no rate for withdraw currency %q", cfg.withdrawCurrency)
	}

	for _, p := range parsed.Prizes {
		prize := model.Prize{
			Type:        p.Type,
			Currency:    p.Currency,
			Amount:      p.Amount,
			Multiplier:  p.Multiplier,
			Description: p.Desc,
		}
		switch p.Type {
		case model.PrizeCurrency:
			if _, ok := cfg.rates[p.Currency]; !ok {
				return nil, fmt.Errorf("prize %q: unknown currency %s", p.Desc, p.Currency)
			}
			if p.Amount <= 0 {
				return nil, fmt.Errorf("prize %q: invalid amount", p.Desc)
			}
		case model.PrizeBooster:
			d, err := time.ParseDuration(p.Duration)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("prize %q: invalid duration %q", p.Desc, p.Duration)
			}
			if p.Multiplier <= 1 {
				return nil, fmt.Errorf("prize %q: invalid multiplier", p.Desc)
			}
			prize.Duration = d
		default:
			return nil, fmt.Errorf("prize %q: unknown type %q", p.Desc, p.Type)
		}
		cfg.prizes = append(cfg.prizes, prize)
	}

	if len(cfg.prizes) == 0 {
		return nil, fmt.Errorf("no wheel prizes configured")
	}

	return cfg, nil
}

func (c *farmConfig) CycleLength() time.Duration {
	return c.cycle
}

func (c *farmConfig) WheelCooldown() time.Duration {
	return c.wheelCooldown
}

func (c *farmConfig) MinWithdrawRub() int {
	return c.minWithdrawRub
}

func (c *farmConfig) WithdrawCurrency() string {
	return c.withdrawCurrency
}

func (c *farmConfig) DefaultZone() string {
	return c.defaultZone
}

func (c *farmConfig) Zones() []model.Zone {
	return c.zones
}

func (c *farmConfig) ZoneByID(id string) (model.Zone, bool) {
	z, ok := c.zoneIndex[id]
	return z, ok
}

func (c *farmConfig) Rates() map[string]float64 {
	return c.rates
}

func (c *farmConfig) RateOf(currency string) float64 {
	return c.rates[currency]
}

func (c *farmConfig) Prizes() []model.Prize {
	return c.prizes
}
