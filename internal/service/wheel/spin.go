package wheel

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/service"
)

// Spin - крутит рулетку. Приз и отметка времени пишутся одной
// транзакцией: либо оба, либо ничего
func (s *serv) Spin(ctx context.Context, userID int) (*model.SpinResult, error) {
	prizes := s.cfg.Prizes()

	var res *model.SpinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accountRepo.GetOrCreate(txCtx, userID); err != nil {
			return err
		}

		acc, err := s.accountRepo.LockForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		// Проверка кулдауна до любых изменений
		if acc.LastWheel != nil && now.Before(acc.LastWheel.Add(s.cfg.WheelCooldown())) {
			return service.ErrCooldownActive
		}

		// Равновероятный выбор сектора
		prize := prizes[rand.Intn(len(prizes))]

		applyPrize(acc, prize, now)
		acc.LastWheel = &now

		res = &model.SpinResult{
			Prize:    prize,
			Message:  prizeMessage(prize),
			NextSpin: now.Add(s.cfg.WheelCooldown()),
		}

		return s.accountRepo.Save(txCtx, acc)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// applyPrize - зачисляет приз на запись фарма. Новый буст всегда
// замещает текущий, даже если текущий сильнее и живёт дольше
func applyPrize(acc *model.Account, prize model.Prize, now time.Time) {
	switch prize.Type {
	case model.PrizeCurrency:
		switch prize.Currency {
		case model.CurrencyTON:
			acc.TON += prize.Amount
		case model.CurrencyNOT:
			acc.NOT += int64(prize.Amount)
		case model.CurrencyUSDT:
			acc.USDT += prize.Amount
		}
	case model.PrizeBooster:
		expire := now.Add(prize.Duration)
		acc.BoosterMultiplier = prize.Multiplier
		acc.BoosterExpire = &expire
	}
}

func prizeMessage(prize model.Prize) string {
	if prize.Type == model.PrizeBooster {
		return fmt.Sprintf("🚀 Активирован %s!", prize.Description)
	}
	return fmt.Sprintf("🎉 Ты выиграл %s!", prize.Description)
}
