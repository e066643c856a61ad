package account_repo

import (
	"context"
	"errors"
	"time"

	"farm_backend/internal/model"
	"farm_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "accounts"
	colUserID      = "user_id"
	colTON         = "ton"
	colNOT         = "not_tokens"
	colUSDT        = "usdt"
	colLastFarm    = "last_farm"
	colPermMult    = "booster_multiplier"
	colZone        = "current_zone"
	colLastWheel   = "last_wheel"
	colBoostMult   = "active_booster_multiplier"
	colBoostExpire = "booster_expire"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAccountRepository(dbc *pgxpool.Pool) repository.AccountRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetOrCreate - возвращает запись фарма пользователя.
// При первом обращении создаёт строку со значениями по умолчанию
// и last_farm = текущий момент (начало отсчёта циклов)
func (r *repo) GetOrCreate(ctx context.Context, userID int) (*model.Account, error) {
	// Вставка при отсутствии записи
	insert := sq.Insert(table).
		Columns(colUserID, colLastFarm).
		Values(userID, time.Now().UTC()).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)

	_, err = db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return r.selectAccount(ctx, userID, false)
}

// LockForUpdate - читает запись фарма с блокировкой строки (FOR UPDATE).
// Сериализует конкурентные операции над одним и тем же пользователем
func (r *repo) LockForUpdate(ctx context.Context, userID int) (*model.Account, error) {
	return r.selectAccount(ctx, userID, true)
}

func (r *repo) selectAccount(ctx context.Context, userID int, forUpdate bool) (*model.Account, error) {
	query := sq.Select(
		colUserID, colTON, colNOT, colUSDT, colLastFarm,
		colPermMult, colZone, colLastWheel, colBoostMult, colBoostExpire,
	).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var acc model.Account
	err = db.QueryRow(ctx, sqlStr, args...).Scan(
		&acc.UserID,
		&acc.TON,
		&acc.NOT,
		&acc.USDT,
		&acc.LastFarm,
		&acc.PermanentMultiplier,
		&acc.CurrentZone,
		&acc.LastWheel,
		&acc.BoosterMultiplier,
		&acc.BoosterExpire,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}
		return nil, err
	}

	return &acc, nil
}

// Save - записывает все изменяемые поля записи фарма
func (r *repo) Save(ctx context.Context, acc *model.Account) error {
	query := sq.Update(table).
		Set(colTON, acc.TON).
		Set(colNOT, acc.NOT).
		Set(colUSDT, acc.USDT).
		Set(colLastFarm, acc.LastFarm).
		Set(colPermMult, acc.PermanentMultiplier).
		Set(colZone, acc.CurrentZone).
		Set(colLastWheel, acc.LastWheel).
		Set(colBoostMult, acc.BoosterMultiplier).
		Set(colBoostExpire, acc.BoosterExpire).
		Where(sq.Eq{colUserID: acc.UserID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)

	_, err = db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
