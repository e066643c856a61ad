package farm

import (
	"testing"
	"time"

	"farm_backend/internal/model"
)

var (
	mineZone  = model.Zone{ID: "mine", Name: "Шахта", Currency: model.CurrencyTON, Rate: 0.5}
	labZone   = model.Zone{ID: "lab", Name: "Лаборатория", Currency: model.CurrencyNOT, Rate: 100}
	spaceZone = model.Zone{ID: "space", Name: "Космос", Currency: model.CurrencyUSDT, Rate: 0.2}
)

const cycle = 2 * time.Hour

func accountFarmedAgo(ago time.Duration) *model.Account {
	last := time.Now().UTC().Add(-ago)
	return &model.Account{
		UserID:              1,
		LastFarm:            &last,
		PermanentMultiplier: 1.0,
		CurrentZone:         "mine",
		BoosterMultiplier:   1.0,
	}
}

func TestCalculateYield_NoLastFarm(t *testing.T) {
	acc := &model.Account{UserID: 1, PermanentMultiplier: 1.0, BoosterMultiplier: 1.0}

	y := CalculateYield(acc, mineZone, cycle, 1.0, time.Now().UTC())
	if !y.IsZero() {
		t.Fatalf("expected zero yield, got %+v", y)
	}
}

func TestCalculateYield_FloorsCycles(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		elapsed time.Duration
		wantTON float64
	}{
		{"just under one cycle", 2*time.Hour - time.Second, 0},
		{"one cycle and a second", 2*time.Hour + time.Second, 0.5},
		{"two cycles minus a second", 4*time.Hour - time.Second, 0.5},
		{"three full cycles", 6 * time.Hour, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := now.Add(-tt.elapsed)
			acc := &model.Account{LastFarm: &last, PermanentMultiplier: 1.0, BoosterMultiplier: 1.0}

			y := CalculateYield(acc, mineZone, cycle, 1.0, now)
			if y.TON != tt.wantTON {
				t.Errorf("elapsed %v: got %v TON, want %v", tt.elapsed, y.TON, tt.wantTON)
			}
			if y.NOT != 0 || y.USDT != 0 {
				t.Errorf("unexpected accrual in other currencies: %+v", y)
			}
		})
	}
}

func TestCalculateYield_OnlyCurrentZoneCurrency(t *testing.T) {
	acc := accountFarmedAgo(5 * time.Hour) // 2 полных цикла

	y := CalculateYield(acc, spaceZone, cycle, 1.0, time.Now().UTC())
	if y.USDT != 0.4 {
		t.Errorf("got %v USDT, want 0.4", y.USDT)
	}
	if y.TON != 0 || y.NOT != 0 {
		t.Errorf("unexpected accrual outside zone currency: %+v", y)
	}
}

func TestCalculateYield_TruncatesIntegerCurrency(t *testing.T) {
	acc := accountFarmedAgo(2*time.Hour + time.Minute)
	acc.PermanentMultiplier = 1.015

	// 100 * 1 * 1.015 = 101.5 -> отбрасываем дробную часть
	y := CalculateYield(acc, labZone, cycle, 1.0, time.Now().UTC())
	if y.NOT != 101 {
		t.Errorf("got %d NOT, want 101", y.NOT)
	}
}

func TestCalculateYield_ComposesMultipliers(t *testing.T) {
	acc := accountFarmedAgo(2*time.Hour + time.Minute)
	acc.PermanentMultiplier = 2.0

	y := CalculateYield(acc, mineZone, cycle, 1.5, time.Now().UTC())
	if y.TON != 1.5 {
		t.Errorf("got %v TON, want 1.5 (0.5 * 1 * 1.5 * 2.0)", y.TON)
	}
}

func TestCalculateYield_LastFarmInFuture(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)
	acc := &model.Account{LastFarm: &future, PermanentMultiplier: 1.0, BoosterMultiplier: 1.0}

	y := CalculateYield(acc, mineZone, cycle, 1.0, time.Now().UTC())
	if !y.IsZero() {
		t.Fatalf("expected zero yield for future last_farm, got %+v", y)
	}
}

func TestResolveBooster_NoExpiry(t *testing.T) {
	acc := &model.Account{BoosterMultiplier: 1.0}

	mult, expired := ResolveBooster(acc, time.Now().UTC())
	if mult != 1.0 || expired {
		t.Fatalf("got mult=%v expired=%v, want 1.0/false", mult, expired)
	}

	// Значение без срока хранится как есть, без подмены
	acc.BoosterMultiplier = 3.0
	mult, expired = ResolveBooster(acc, time.Now().UTC())
	if mult != 3.0 || expired {
		t.Fatalf("got mult=%v expired=%v, want 3.0/false", mult, expired)
	}
}

func TestResolveBooster_Active(t *testing.T) {
	now := time.Now().UTC()
	expire := now.Add(time.Hour)
	acc := &model.Account{BoosterMultiplier: 2.0, BoosterExpire: &expire}

	mult, expired := ResolveBooster(acc, now)
	if mult != 2.0 || expired {
		t.Fatalf("got mult=%v expired=%v, want 2.0/false", mult, expired)
	}
}

func TestResolveBooster_Expired(t *testing.T) {
	now := time.Now().UTC()
	expire := now.Add(-time.Minute)
	acc := &model.Account{BoosterMultiplier: 2.0, BoosterExpire: &expire}

	mult, expired := ResolveBooster(acc, now)
	if mult != 1.0 {
		t.Errorf("expired booster must resolve to 1.0, got %v", mult)
	}
	if !expired {
		t.Error("expected reset signal for expired booster")
	}
}

func TestNextFarmIn(t *testing.T) {
	now := time.Now().UTC()

	if got := NextFarmIn(nil, cycle, now); got != "Готово!" {
		t.Errorf("nil last_farm: got %q", got)
	}

	ripe := now.Add(-cycle)
	if got := NextFarmIn(&ripe, cycle, now); got != "Готово!" {
		t.Errorf("ripe cycle: got %q", got)
	}

	recent := now.Add(-30 * time.Minute)
	if got := NextFarmIn(&recent, cycle, now); got != "1 ч 30 мин" {
		t.Errorf("half hour in: got %q, want %q", got, "1 ч 30 мин")
	}
}
