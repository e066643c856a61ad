package model

import "time"

// Валюты фарма
const (
	CurrencyTON  = "TON"
	CurrencyNOT  = "NOT"
	CurrencyUSDT = "USDT"
)

// Account - запись фарма одного пользователя
type Account struct {
	UserID              int
	TON                 float64
	NOT                 int64
	USDT                float64
	LastFarm            *time.Time // nil - начислений ещё не было
	PermanentMultiplier float64
	CurrentZone         string
	LastWheel           *time.Time // nil - рулетка ещё не крутилась
	BoosterMultiplier   float64    // временный буст из рулетки
	BoosterExpire       *time.Time // nil - буст не активен
}

// Yield - начисление за прошедшие полные циклы по каждой валюте
type Yield struct {
	TON  float64
	NOT  int64
	USDT float64
}

// IsZero - true, если начислять нечего
func (y Yield) IsZero() bool {
	return y.TON == 0 && y.NOT == 0 && y.USDT == 0
}

// Zone - зона фарма из конфигурации
type Zone struct {
	ID       string
	Name     string
	Currency string
	Rate     float64 // добыча за один полный цикл до множителей
}

// BalanceInfo - живой баланс: сохранённое + неполученное начисление
type BalanceInfo struct {
	TON  float64
	NOT  int64
	USDT float64

	RubTON   float64
	RubNOT   float64
	RubUSDT  float64
	RubTotal float64

	CurrentZone string
	NextFarm    string // "Готово!" или "1 ч 23 мин"
}
