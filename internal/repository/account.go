package repository

import (
	"context"
	"errors"

	"spacebook/internal/domain"
)

var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email
	// constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines persistence operations for Account entities.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	UpdateAvatar(ctx context.Context, id int64, avatarPath string) error
}
