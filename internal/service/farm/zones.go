package farm

import (
	"context"

	"farm_backend/internal/model"
	"farm_backend/internal/service"
)

// Zones - список зон фарма и текущий выбор пользователя
func (s *serv) Zones(ctx context.Context, userID int) ([]model.Zone, string, error) {
	acc, err := s.accountRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	zone := s.zoneOf(acc)

	return s.cfg.Zones(), zone.ID, nil
}

// SelectZone - переключает зону фарма. Время последнего сбора и балансы
// не трогаем: несобранные циклы в старой зоне пропадают
func (s *serv) SelectZone(ctx context.Context, userID int, zoneID string) error {
	if _, ok := s.cfg.ZoneByID(zoneID); !ok {
		return service.ErrUnknownZone
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accountRepo.GetOrCreate(txCtx, userID); err != nil {
			return err
		}

		acc, err := s.accountRepo.LockForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		acc.CurrentZone = zoneID

		return s.accountRepo.Save(txCtx, acc)
	})
}

// Rates - статичная таблица курсов
func (s *serv) Rates() map[string]float64 {
	return s.cfg.Rates()
}
