package model

import "time"

// Типы призов рулетки
const (
	PrizeCurrency = "currency"
	PrizeBooster  = "booster"
)

// Prize - один сектор рулетки удачи
type Prize struct {
	Type        string
	Currency    string  // для PrizeCurrency
	Amount      float64 // для PrizeCurrency
	Multiplier  float64 // для PrizeBooster
	Duration    time.Duration
	Description string
}

type SpinResult struct {
	Prize    Prize
	Message  string
	NextSpin time.Time
}
