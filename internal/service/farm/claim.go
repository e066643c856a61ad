package farm

import (
	"context"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/service"
)

// Claim - собирает накопленное начисление. Единственный путь,
// который двигает last_farm вперёд
func (s *serv) Claim(ctx context.Context, userID int) (*model.Yield, error) {
	var (
		credited model.Yield
		nothing  bool
	)

	// Начало транзакции: чтение и запись должны быть одним атомарным шагом,
	// иначе два конкурентных сбора начислят одни и те же циклы дважды
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accountRepo.GetOrCreate(txCtx, userID); err != nil {
			return err
		}

		acc, err := s.accountRepo.LockForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		// Защита от регрессии часов: last_farm не может быть в будущем
		if acc.LastFarm != nil && acc.LastFarm.After(now) {
			return service.ErrClockRegression
		}

		zone := s.zoneOf(acc)

		mult, expiredBooster := ResolveBooster(acc, now)
		if expiredBooster {
			acc.BoosterMultiplier = 1.0
			acc.BoosterExpire = nil
		}

		y := CalculateYield(acc, zone, s.cfg.CycleLength(), mult, now)
		if y.IsZero() {
			// Начислять нечего, но сброс протухшего буста всё равно фиксируем
			if expiredBooster {
				if err := s.accountRepo.Save(txCtx, acc); err != nil {
					return err
				}
			}
			nothing = true
			return nil
		}

		acc.TON += y.TON
		acc.NOT += y.NOT
		acc.USDT += y.USDT
		acc.LastFarm = &now

		credited = y

		return s.accountRepo.Save(txCtx, acc)
	})
	if err != nil {
		return nil, err
	}

	if nothing {
		return nil, service.ErrNothingToClaim
	}

	return &credited, nil
}
