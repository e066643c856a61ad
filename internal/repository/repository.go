package repository

import (
	"context"
	"errors"

	"farm_backend/internal/model"
)

// ErrAccountNotFound - запись фарма отсутствует. При обычном потоке
// недостижимо: GetOrCreate вызывается раньше LockForUpdate
var ErrAccountNotFound = errors.New("account not found")

type AccountRepository interface {
	// GetOrCreate - возвращает запись фарма, создавая её при первом обращении
	GetOrCreate(ctx context.Context, userID int) (*model.Account, error)
	// LockForUpdate - читает запись с блокировкой строки.
	// Вызывать только внутри транзакции
	LockForUpdate(ctx context.Context, userID int) (*model.Account, error)
	// Save - записывает все изменяемые поля записи
	Save(ctx context.Context, acc *model.Account) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
