package service

import (
	"context"

	"farm_backend/internal/model"
)

type FarmService interface {
	Claim(ctx context.Context, userID int) (*model.Yield, error)
	Balance(ctx context.Context, userID int) (*model.BalanceInfo, error)
	Zones(ctx context.Context, userID int) ([]model.Zone, string, error)
	SelectZone(ctx context.Context, userID int, zoneID string) error
	Rates() map[string]float64
}

type WheelService interface {
	Spin(ctx context.Context, userID int) (*model.SpinResult, error)
}

type WithdrawService interface {
	Withdraw(ctx context.Context, userID int, amountRub int, destination string) (*model.WithdrawalResult, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// PayoutGateway - внешний платёжный сервис. Вызывается строго после
// фиксации резервирования, вне блокировки записи фарма
type PayoutGateway interface {
	Pay(ctx context.Context, req *model.WithdrawalRequest) error
}
