package converter

import (
	dto "farm_backend/internal/api/dto/farm"
	"farm_backend/internal/model"
)

func ToClaimResponse(y model.Yield) dto.ClaimResponse {
	return dto.ClaimResponse{
		TON:  y.TON,
		NOT:  y.NOT,
		USDT: y.USDT,
	}
}

func ToBalanceResponse(info model.BalanceInfo) dto.BalanceResponse {
	return dto.BalanceResponse{
		TON:         info.TON,
		NOT:         info.NOT,
		USDT:        info.USDT,
		RubTON:      info.RubTON,
		RubNOT:      info.RubNOT,
		RubUSDT:     info.RubUSDT,
		RubTotal:    info.RubTotal,
		CurrentZone: info.CurrentZone,
		NextFarm:    info.NextFarm,
	}
}

func ToZonesResponse(zones []model.Zone, current string) dto.ZonesResponse {
	items := make([]dto.ZoneItem, len(zones))
	for i, z := range zones {
		items[i] = dto.ZoneItem{
			ID:       z.ID,
			Name:     z.Name,
			Currency: z.Currency,
			Rate:     z.Rate,
			Selected: z.ID == current,
		}
	}
	return dto.ZonesResponse{Zones: items}
}

func ToRatesResponse(rates map[string]float64) dto.RatesResponse {
	return dto.RatesResponse{Rates: rates}
}
