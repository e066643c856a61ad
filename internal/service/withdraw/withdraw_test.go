package withdraw

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type stubConfig struct{}

func (stubConfig) CycleLength() time.Duration   { return 2 * time.Hour }
func (stubConfig) WheelCooldown() time.Duration { return 48 * time.Hour }
func (stubConfig) MinWithdrawRub() int          { return 500 }
func (stubConfig) WithdrawCurrency() string     { return model.CurrencyTON }
func (stubConfig) DefaultZone() string          { return "mine" }

func (stubConfig) Zones() []model.Zone {
	return []model.Zone{{ID: "mine", Name: "Шахта", Currency: model.CurrencyTON, Rate: 0.5}}
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
	return map[string]float64{
		model.CurrencyTON:  70.0,
		model.CurrencyNOT:  0.12,
		model.CurrencyUSDT: 92.0,
	}
}

func (c stubConfig) RateOf(currency string) float64 {
	return c.Rates()[currency]
}

func (stubConfig) Prizes() []model.Prize { return nil }

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

type fakeGateway struct {
	calls []*model.WithdrawalRequest
	err   error
}

func (g *fakeGateway) Pay(_ context.Context, req *model.WithdrawalRequest) error {
	g.calls = append(g.calls, req)
	return g.err
}

func tonAccount(ton float64) *model.Account {
	now := time.Now().UTC()
	return &model.Account{
		UserID:              1,
		TON:                 ton,
		LastFarm:            &now,
		PermanentMultiplier: 1.0,
		CurrentZone:         "mine",
		BoosterMultiplier:   1.0,
	}
}

func newWithdrawServ(repo *fakeAccountRepo, gw *fakeGateway) *serv {
	return &serv{
		cfg:         stubConfig{},
		accountRepo: repo,
		gateway:     gw,
		txManager:   fakeTxManager{},
	}
}

const validCard = "1234567890123456"

func TestWithdraw_BelowMinimum(t *testing.T) {
	repo := &fakeAccountRepo{acc: tonAccount(100)}
	gw := &fakeGateway{}
	s := newWithdrawServ(repo, gw)

	_, err := s.Withdraw(context.Background(), 1, 499, validCard)
	if !errors.Is(err, service.ErrBelowMinimum) {
		t.Fatalf("got %v, want ErrBelowMinimum", err)
	}
	if len(gw.calls) != 0 || repo.saves != 0 {
		t.Error("no side effects expected on validation failure")
	}
}

func TestWithdraw_InvalidDestination(t *testing.T) {
	repo := &fakeAccountRepo{acc: tonAccount(100)}
	gw := &fakeGateway{}
	s := newWithdrawServ(repo, gw)

	for _, card := range []string{"", "abc", "1234", "1234 5678 9012 3456", "12345678901234567890"} {
		_, err := s.Withdraw(context.Background(), 1, 500, card)
		if !errors.Is(err, service.ErrInvalidDestination) {
			t.Errorf("card %q: got %v, want ErrInvalidDestination", card, err)
		}
	}
	if len(gw.calls) != 0 {
		t.Error("gateway must not be called for malformed destination")
	}
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	// 7.13 TON * 70 = 499.1 -> int 499 < 500
	repo := &fakeAccountRepo{acc: tonAccount(7.13)}
	gw := &fakeGateway{}
	s := newWithdrawServ(repo, gw)

	_, err := s.Withdraw(context.Background(), 1, 500, validCard)
	if !errors.Is(err, service.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}
	if len(gw.calls) != 0 {
		t.Error("gateway must not be called when funds are insufficient")
	}
	if repo.acc.TON != 7.13 {
		t.Errorf("balance must stay intact, got %v", repo.acc.TON)
	}
}

func TestWithdraw_Success(t *testing.T) {
	repo := &fakeAccountRepo{acc: tonAccount(10)}
	gw := &fakeGateway{}
	s := newWithdrawServ(repo, gw)

	res, err := s.Withdraw(context.Background(), 1, 500, validCard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AmountRub != 500 {
		t.Errorf("got %d rub, want 500", res.AmountRub)
	}

	// Списание: 500 / 70 TON
	wantTON := 10 - 500.0/70.0
	if diff := repo.acc.TON - wantTON; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got %v TON after reservation, want %v", repo.acc.TON, wantTON)
	}

	if len(gw.calls) != 1 {
		t.Fatalf("expected one gateway call, got %d", len(gw.calls))
	}
	req := gw.calls[0]
	if req.AmountRub != 500 || req.Destination != validCard || req.UserID != 1 {
		t.Errorf("bad gateway request: %+v", req)
	}
	if !strings.HasPrefix(req.IdempotencyKey, "pf_1_") {
		t.Errorf("bad idempotency key: %s", req.IdempotencyKey)
	}
	if res.RequestID != req.IdempotencyKey {
		t.Error("confirmation must echo the idempotency key")
	}
}

func TestWithdraw_GatewayFailureKeepsReservation(t *testing.T) {
	repo := &fakeAccountRepo{acc: tonAccount(10)}
	gw := &fakeGateway{err: errors.New("tonconsole error: status 403")}
	s := newWithdrawServ(repo, gw)

	_, err := s.Withdraw(context.Background(), 1, 500, validCard)
	if !errors.Is(err, service.ErrPayoutGateway) {
		t.Fatalf("got %v, want ErrPayoutGateway", err)
	}
	if !strings.Contains(err.Error(), "status 403") {
		t.Errorf("provider detail lost: %v", err)
	}

	// Текущее поведение: при ошибке шлюза списание НЕ возвращается
	wantTON := 10 - 500.0/70.0
	if diff := repo.acc.TON - wantTON; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("reservation must stay debited, got %v TON, want %v", repo.acc.TON, wantTON)
	}
}

func TestWithdraw_RealizesPendingYieldFirst(t *testing.T) {
	// 6 TON на счету + 2 полных цикла по 0.5 TON впереди = 7 TON -> 490 руб... мало.
	// Возьмём 7 TON + 1 цикл: 7.5 TON * 70 = 525 руб - хватает на 500
	acc := tonAccount(7)
	last := time.Now().UTC().Add(-(2*time.Hour + time.Minute))
	acc.LastFarm = &last
	repo := &fakeAccountRepo{acc: acc}
	gw := &fakeGateway{}
	s := newWithdrawServ(repo, gw)

	_, err := s.Withdraw(context.Background(), 1, 500, validCard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTON := 7.5 - 500.0/70.0
	if diff := repo.acc.TON - wantTON; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got %v TON, want %v (pending yield realized before conversion)", repo.acc.TON, wantTON)
	}
	// Неявный сбор двигает last_farm: циклы не начислятся второй раз
	if !repo.acc.LastFarm.After(last) {
		t.Error("last_farm must advance when pending yield is realized")
	}
}
