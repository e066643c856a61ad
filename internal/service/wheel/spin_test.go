package wheel

import (
	"context"
	"errors"
	"testing"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

var testPrizes = []model.Prize{
	{Type: model.PrizeCurrency, Currency: model.CurrencyTON, Amount: 0.1, Description: "0.1 TON"},
	{Type: model.PrizeCurrency, Currency: model.CurrencyUSDT, Amount: 10, Description: "10 USDT"},
	{Type: model.PrizeBooster, Multiplier: 1.2, Duration: 24 * time.Hour, Description: "Буст ×1.2 на 24ч"},
}

type stubConfig struct{}

func (stubConfig) CycleLength() time.Duration   { return 2 * time.Hour }
func (stubConfig) WheelCooldown() time.Duration { return 48 * time.Hour }
func (stubConfig) MinWithdrawRub() int          { return 500 }
func (stubConfig) WithdrawCurrency() string     { return model.CurrencyTON }
func (stubConfig) DefaultZone() string          { return "mine" }

func (stubConfig) Zones() []model.Zone {
	return []model.Zone{{ID: "mine", Currency: model.CurrencyTON, Rate: 0.5}}
}

func (c stubConfig) ZoneByID(id string) (model.Zone, bool) {
	for _, z := range c.Zones() {
		if z.ID == id {
			return z, true
		}
	}
	return model.Zone{}, false
}

func (stubConfig) Rates() map[string]float64 {
	return map[string]float64{model.CurrencyTON: 70.0, model.CurrencyUSDT: 92.0}
}

func (c stubConfig) RateOf(currency string) float64 {
	return c.Rates()[currency]
}

func (stubConfig) Prizes() []model.Prize { return testPrizes }

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAccountRepo struct {
	acc   *model.Account
	saves int
}

func (f *fakeAccountRepo) GetOrCreate(_ context.Context, userID int) (*model.Account, error) {
	if f.acc == nil {
		now := time.Now().UTC()
		f.acc = &model.Account{
			UserID:              userID,
			LastFarm:            &now,
			PermanentMultiplier: 1.0,
			CurrentZone:         "mine",
			BoosterMultiplier:   1.0,
		}
	}
	c := *f.acc
	return &c, nil
}

func (f *fakeAccountRepo) LockForUpdate(_ context.Context, userID int) (*model.Account, error) {
	c := *f.acc
	return &c, nil
}

func (f *fakeAccountRepo) Save(_ context.Context, acc *model.Account) error {
	c := *acc
	f.acc = &c
	f.saves++
	return nil
}

func newWheelServ(repo *fakeAccountRepo) *serv {
	return &serv{
		cfg:         stubConfig{},
		accountRepo: repo,
		txManager:   fakeTxManager{},
	}
}

func TestSpin_FirstSpinEligible(t *testing.T) {
	repo := &fakeAccountRepo{}
	s := newWheelServ(repo)

	res, err := s.Spin(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message == "" {
		t.Error("expected prize message")
	}
	if repo.acc.LastWheel == nil {
		t.Error("last_wheel must be set after a spin")
	}
	if got, want := res.NextSpin, repo.acc.LastWheel.Add(48*time.Hour); !got.Equal(want) {
		t.Errorf("next spin %v, want %v", got, want)
	}
}

func TestSpin_CooldownActive(t *testing.T) {
	lastWheel := time.Now().UTC().Add(-time.Hour)
	now := time.Now().UTC()
	repo := &fakeAccountRepo{acc: &model.Account{
		UserID:              1,
		LastFarm:            &now,
		PermanentMultiplier: 1.0,
		CurrentZone:         "mine",
		BoosterMultiplier:   1.0,
		LastWheel:           &lastWheel,
	}}
	s := newWheelServ(repo)

	_, err := s.Spin(context.Background(), 1)
	if !errors.Is(err, service.ErrCooldownActive) {
		t.Fatalf("got %v, want ErrCooldownActive", err)
	}
	if repo.saves != 0 {
		t.Errorf("no mutation expected on cooldown, got %d saves", repo.saves)
	}
	if repo.acc.TON != 0 || repo.acc.USDT != 0 || repo.acc.BoosterExpire != nil {
		t.Errorf("account changed on rejected spin: %+v", repo.acc)
	}
}

func TestSpin_EligibleAfterCooldown(t *testing.T) {
	lastWheel := time.Now().UTC().Add(-49 * time.Hour)
	now := time.Now().UTC()
	repo := &fakeAccountRepo{acc: &model.Account{
		UserID:              1,
		LastFarm:            &now,
		PermanentMultiplier: 1.0,
		CurrentZone:         "mine",
		BoosterMultiplier:   1.0,
		LastWheel:           &lastWheel,
	}}
	s := newWheelServ(repo)

	if _, err := s.Spin(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.acc.LastWheel.After(lastWheel) {
		t.Error("last_wheel must advance on a successful spin")
	}
}

func TestApplyPrize_CreditsCurrency(t *testing.T) {
	now := time.Now().UTC()
	acc := &model.Account{PermanentMultiplier: 1.0, BoosterMultiplier: 1.0}

	applyPrize(acc, testPrizes[0], now)
	if acc.TON != 0.1 {
		t.Errorf("got %v TON, want 0.1", acc.TON)
	}

	applyPrize(acc, testPrizes[1], now)
	if acc.USDT != 10 {
		t.Errorf("got %v USDT, want 10", acc.USDT)
	}
}

func TestApplyPrize_BoosterOverwritesStronger(t *testing.T) {
	now := time.Now().UTC()
	activeExpire := now.Add(6 * time.Hour)
	acc := &model.Account{
		PermanentMultiplier: 1.0,
		BoosterMultiplier:   2.0, // активный ×2.0/6ч
		BoosterExpire:       &activeExpire,
	}

	// Выигран более слабый, но долгий буст - он замещает текущий
	applyPrize(acc, testPrizes[2], now)

	if acc.BoosterMultiplier != 1.2 {
		t.Errorf("got multiplier %v, want 1.2", acc.BoosterMultiplier)
	}
	if acc.BoosterExpire == nil || !acc.BoosterExpire.Equal(now.Add(24*time.Hour)) {
		t.Errorf("got expire %v, want %v", acc.BoosterExpire, now.Add(24*time.Hour))
	}
}

func TestSpin_PrizeAndTimestampAtomic(t *testing.T) {
	repo := &fakeAccountRepo{}
	s := newWheelServ(repo)

	if _, err := s.Spin(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Приз и отметка времени пишутся одним Save
	if repo.saves != 1 {
		t.Errorf("expected a single save, got %d", repo.saves)
	}
}
