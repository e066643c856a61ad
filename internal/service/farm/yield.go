package farm

import (
	"fmt"
	"time"

	"farm_backend/internal/model"
)

// ResolveBooster - множитель временного буста на момент now.
// Если буст протух, возвращает 1.0 и признак того, что вызывающий
// обязан сбросить буст в записи (сброс идемпотентен: два конкурентных
// сброса пишут одно и то же)
func ResolveBooster(acc *model.Account, now time.Time) (float64, bool) {
	if acc.BoosterExpire == nil {
		// Буст без срока - храним как есть
		return acc.BoosterMultiplier, false
	}
	if now.After(*acc.BoosterExpire) {
		return 1.0, true
	}
	return acc.BoosterMultiplier, false
}

// CalculateYield - начисление за полные циклы с last_farm по now.
// Неполный цикл отбрасывается (целочисленное деление, без округления).
// Начисляется только валюта текущей зоны: непособранные циклы в
// покинутой зоне не компенсируются
func CalculateYield(acc *model.Account, zone model.Zone, cycle time.Duration, boosterMult float64, now time.Time) model.Yield {
	var y model.Yield

	if acc.LastFarm == nil {
		return y
	}

	cycles := int64(now.Sub(*acc.LastFarm).Seconds()) / int64(cycle.Seconds())
	if cycles <= 0 {
		return y
	}

	total := zone.Rate * float64(cycles) * boosterMult * acc.PermanentMultiplier

	switch zone.Currency {
	case model.CurrencyTON:
		y.TON = total
	case model.CurrencyNOT:
		// NOT - целочисленная валюта, дробная часть отбрасывается
		y.NOT = int64(total)
	case model.CurrencyUSDT:
		y.USDT = total
	}

	return y
}

// NextFarmIn - строка таймера до следующего полного цикла
func NextFarmIn(lastFarm *time.Time, cycle time.Duration, now time.Time) string {
	if lastFarm == nil {
		return "Готово!"
	}
	next := lastFarm.Add(cycle)
	if !now.Before(next) {
		return "Готово!"
	}
	left := int64(next.Sub(now).Seconds())
	return fmt.Sprintf("%d ч %d мин", left/3600, left%3600/60)
}
