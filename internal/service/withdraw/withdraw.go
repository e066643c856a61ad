package withdraw

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/service"
	"farm_backend/internal/service/farm"

	"github.com/google/uuid"
)

// Номер карты: только цифры, 13-19 знаков
var cardNumberRe = regexp.MustCompile(`^[0-9]{13,19}$`)

// Withdraw - вывод amountRub рублей на карту destination.
// Резервирование (списание TON по курсу) фиксируется в транзакции ДО
// обращения к платёжному шлюзу: повторный конкурентный вывод не сможет
// потратить те же средства. При ошибке шлюза списание не возвращается
func (s *serv) Withdraw(ctx context.Context, userID int, amountRub int, destination string) (*model.WithdrawalResult, error) {
	if amountRub < s.cfg.MinWithdrawRub() {
		return nil, service.ErrBelowMinimum
	}

	if !cardNumberRe.MatchString(destination) {
		return nil, service.ErrInvalidDestination
	}

	currency := s.cfg.WithdrawCurrency()
	rate := s.cfg.RateOf(currency)

	// Резервирование в транзакции. Сетевой вызов - строго после коммита,
	// чтобы не держать блокировку записи на время внешнего запроса
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accountRepo.GetOrCreate(txCtx, userID); err != nil {
			return err
		}

		acc, err := s.accountRepo.LockForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		zone, ok := s.cfg.ZoneByID(acc.CurrentZone)
		if !ok {
			acc.CurrentZone = s.cfg.DefaultZone()
			zone, _ = s.cfg.ZoneByID(acc.CurrentZone)
		}

		mult, expiredBooster := farm.ResolveBooster(acc, now)
		if expiredBooster {
			acc.BoosterMultiplier = 1.0
			acc.BoosterExpire = nil
		}

		// Неявный сбор: накопленное начисление реализуем перед конвертацией,
		// двигая last_farm, чтобы те же циклы не начислились второй раз
		y := farm.CalculateYield(acc, zone, s.cfg.CycleLength(), mult, now)
		if !y.IsZero() {
			acc.TON += y.TON
			acc.NOT += y.NOT
			acc.USDT += y.USDT
			acc.LastFarm = &now
		}

		if int(acc.TON*rate) < amountRub {
			return service.ErrInsufficientFunds
		}

		acc.TON -= float64(amountRub) / rate

		return s.accountRepo.Save(txCtx, acc)
	})
	if err != nil {
		return nil, err
	}

	req := &model.WithdrawalRequest{
		UserID:         userID,
		AmountRub:      amountRub,
		Destination:    destination,
		IdempotencyKey: fmt.Sprintf("pf_%d_%s", userID, uuid.NewString()),
	}

	if err := s.gateway.Pay(ctx, req); err != nil {
		log.Printf("payout failed for user %d (key %s): %v", userID, req.IdempotencyKey, err)
		return nil, fmt.Errorf("%w: %s", service.ErrPayoutGateway, err)
	}

	return &model.WithdrawalResult{
		AmountRub: amountRub,
		RequestID: req.IdempotencyKey,
	}, nil
}
