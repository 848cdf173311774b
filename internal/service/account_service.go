package service

import (
	"context"
	"errors"
	"strings"

	"spacebook/internal/domain"
	"spacebook/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail is returned when signing up with an email already in use.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountService describes account lifecycle operations.
type AccountService interface {
	Signup(ctx context.Context, name, email, password, birthday, network string) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	SetAvatar(ctx context.Context, id int64, avatarPath string) (*domain.Account, error)
}

type accountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Signup(ctx context.Context, name, email, password, birthday, network string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	account := &domain.Account{
		Name:     name,
		Email:    email,
		Password: password,
		Birthday: birthday,
		Network:  network,
	}

	if _, err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return account, nil
}

// Authenticate looks up the account whose email and password equal the exact
// supplied values. Passwords are compared as stored, without hashing.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if account.Password != password {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// SetAvatar records a new avatar path on the account. The previous image file
// is left on the upload sink untouched.
func (s *accountService) SetAvatar(ctx context.Context, id int64, avatarPath string) (*domain.Account, error) {
	if err := s.accounts.UpdateAvatar(ctx, id, avatarPath); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}
