package farm

type ClaimResponse struct {
	TON  float64 `json:"ton"`  // Начислено TON
	NOT  int64   `json:"not"`  // Начислено NOT
	USDT float64 `json:"usdt"` // Начислено USDT
}

type BalanceResponse struct {
	TON         float64 `json:"ton"`
	NOT         int64   `json:"not"`
	USDT        float64 `json:"usdt"`
	RubTON      float64 `json:"rub_ton"`
	RubNOT      float64 `json:"rub_not"`
	RubUSDT     float64 `json:"rub_usdt"`
	RubTotal    float64 `json:"rub_total"`
	CurrentZone string  `json:"current_zone"`
	NextFarm    string  `json:"next_farm"` // Таймер до следующего цикла
}

type ZoneItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
	Selected bool    `json:"selected"`
}

type ZonesResponse struct {
	Zones []ZoneItem `json:"zones"`
}

type SelectZoneRequest struct {
	ZoneID string `json:"zone_id"`
}

type RatesResponse struct {
	Rates map[string]float64 `json:"rates"` // Валюта -> рублей за единицу
}
