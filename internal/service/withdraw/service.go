package withdraw

import (
	"farm_backend/internal/config"
	"farm_backend/internal/repository"
	"farm_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg         config.FarmConfig
	accountRepo repository.AccountRepository
	gateway     service.PayoutGateway
	txManager   trm.Manager
}

// NewWithdrawService - вывод средств: конвертация баланса в рубли по
// статичному курсу и выплата через внешний шлюз
func NewWithdrawService(
	cfg config.FarmConfig,
	accountRepo repository.AccountRepository,
	gateway service.PayoutGateway,
	txManager trm.Manager,
) service.WithdrawService {
	return &serv{
		cfg:         cfg,
		accountRepo: accountRepo,
		gateway:     gateway,
		txManager:   txManager,
	}
}
