package farm

import (
	"farm_backend/internal/config"
	"farm_backend/internal/model"
	"farm_backend/internal/repository"
	"farm_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg         config.FarmConfig
	accountRepo repository.AccountRepository
	txManager   trm.Manager
}

// NewFarmService - сервис пассивного фарма: начисление по циклам,
// баланс, зоны и курсы
func NewFarmService(
	cfg config.FarmConfig,
	accountRepo repository.AccountRepository,
	txManager trm.Manager,
) service.FarmService {
	return &serv{
		cfg:         cfg,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

// zoneOf - текущая зона пользователя. Если в записи оказалась зона,
// которой больше нет в конфигурации, откатываемся на зону по умолчанию
func (s *serv) zoneOf(acc *model.Account) model.Zone {
	zone, ok := s.cfg.ZoneByID(acc.CurrentZone)
	if !ok {
		acc.CurrentZone = s.cfg.DefaultZone()
		zone, _ = s.cfg.ZoneByID(acc.CurrentZone)
	}
	return zone
}
