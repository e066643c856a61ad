package farm

import (
	"context"
	"time"

	"farm_backend/internal/model"
)

// Balance - живой баланс: сохранённое плюс несобранное начисление,
// с оценкой в рублях по статичным курсам
func (s *serv) Balance(ctx context.Context, userID int) (*model.BalanceInfo, error) {
	var info *model.BalanceInfo

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accountRepo.GetOrCreate(txCtx, userID); err != nil {
			return err
		}

		acc, err := s.accountRepo.LockForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		zone := s.zoneOf(acc)

		mult, expiredBooster := ResolveBooster(acc, now)
		if expiredBooster {
			// Ленивая нормализация: протухший буст сбрасывается при первом
			// же чтении, которое от него зависит
			acc.BoosterMultiplier = 1.0
			acc.BoosterExpire = nil
			if err := s.accountRepo.Save(txCtx, acc); err != nil {
				return err
			}
		}

		y := CalculateYield(acc, zone, s.cfg.CycleLength(), mult, now)

		rates := s.cfg.Rates()
		totalTON := acc.TON + y.TON
		totalNOT := acc.NOT + y.NOT
		totalUSDT := acc.USDT + y.USDT

		rubTON := totalTON * rates[model.CurrencyTON]
		rubNOT := float64(totalNOT) * rates[model.CurrencyNOT]
		rubUSDT := totalUSDT * rates[model.CurrencyUSDT]

		info = &model.BalanceInfo{
			TON:         totalTON,
			NOT:         totalNOT,
			USDT:        totalUSDT,
			RubTON:      rubTON,
			RubNOT:      rubNOT,
			RubUSDT:     rubUSDT,
			RubTotal:    rubTON + rubNOT + rubUSDT,
			CurrentZone: acc.CurrentZone,
			NextFarm:    NextFarmIn(acc.LastFarm, s.cfg.CycleLength(), now),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}
