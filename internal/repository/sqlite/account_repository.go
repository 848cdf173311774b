package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"spacebook/internal/domain"
	"spacebook/internal/repository"
)

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	birthday TEXT NOT NULL DEFAULT '',
	network TEXT NOT NULL DEFAULT '',
	avatar_path TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAccountsTable); err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	account.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (name, email, password, birthday, network, avatar_path, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.Name,
		account.Email,
		account.Password,
		account.Birthday,
		account.Network,
		account.AvatarPath,
		account.CreatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("account last insert id: %w", err)
	}
	account.ID = id
	return id, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password, birthday, network, avatar_path, created_at
FROM accounts
WHERE email = ?`,
		email,
	)
	return scanAccount(row)
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password, birthday, network, avatar_path, created_at
FROM accounts
WHERE id = ?`,
		id,
	)
	return scanAccount(row)
}

func (r *AccountRepository) UpdateAvatar(ctx context.Context, id int64, avatarPath string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE accounts SET avatar_path = ? WHERE id = ?`,
		avatarPath, id,
	)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update avatar rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row interface {
	Scan(dest ...any) error
}) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&account.Birthday,
		&account.Network,
		&account.AvatarPath,
		&account.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &account, nil
}
