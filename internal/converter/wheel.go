package converter

import (
	dto "farm_backend/internal/api/dto/wheel"
	"farm_backend/internal/model"
)

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Message:  res.Message,
		Prize:    res.Prize.Description,
		NextSpin: res.NextSpin,
	}
}
