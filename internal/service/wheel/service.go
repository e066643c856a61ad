package wheel

import (
	"farm_backend/internal/config"
	"farm_backend/internal/repository"
	"farm_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg         config.FarmConfig
	accountRepo repository.AccountRepository
	txManager   trm.Manager
}

// NewWheelService - рулетка удачи: случайный приз раз в 48 часов
func NewWheelService(
	cfg config.FarmConfig,
	accountRepo repository.AccountRepository,
	txManager trm.Manager,
) service.WheelService {
	return &serv{
		cfg:         cfg,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}
