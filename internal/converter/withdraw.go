package converter

import (
	dto "farm_backend/internal/api/dto/withdraw"
	"farm_backend/internal/model"
)

func ToWithdrawResponse(res model.WithdrawalResult) dto.WithdrawResponse {
	return dto.WithdrawResponse{
		AmountRub: res.AmountRub,
		RequestID: res.RequestID,
	}
}
