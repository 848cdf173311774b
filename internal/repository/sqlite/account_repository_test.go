package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"spacebook/internal/domain"
	"spacebook/internal/repository"
)

type AccountRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	accounts repository.AccountRepository
}

func (s *AccountRepositorySuite) SetupTest() {
	db, err := Open(":memory:")
	require.NoError(s.T(), err)
	s.db = db

	s.accounts = NewAccountRepository(db)
	require.NoError(s.T(), s.accounts.Init(context.Background()))
}

func (s *AccountRepositorySuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *AccountRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()

	account := &domain.Account{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "pw",
		Birthday: "2000-01-01",
		Network:  "Mars",
	}
	id, err := s.accounts.Create(ctx, account)
	require.NoError(s.T(), err)
	assert.Positive(s.T(), id)
	assert.Equal(s.T(), id, account.ID)
	assert.False(s.T(), account.CreatedAt.IsZero())

	byEmail, err := s.accounts.GetByEmail(ctx, "ann@x.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Ann", byEmail.Name)
	assert.Equal(s.T(), "pw", byEmail.Password)
	assert.Equal(s.T(), "Mars", byEmail.Network)
	assert.Empty(s.T(), byEmail.AvatarPath)

	byID, err := s.accounts.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), byEmail.Email, byID.Email)
}

func (s *AccountRepositorySuite) TestDuplicateEmailRejected() {
	ctx := context.Background()

	_, err := s.accounts.Create(ctx, &domain.Account{Name: "Ann", Email: "ann@x.com", Password: "pw"})
	require.NoError(s.T(), err)

	_, err = s.accounts.Create(ctx, &domain.Account{Name: "Other Ann", Email: "ann@x.com", Password: "pw2"})
	assert.ErrorIs(s.T(), err, repository.ErrDuplicateEmail)
}

func (s *AccountRepositorySuite) TestGetMissing() {
	ctx := context.Background()

	_, err := s.accounts.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(s.T(), err, repository.ErrAccountNotFound)

	_, err = s.accounts.GetByID(ctx, 42)
	assert.ErrorIs(s.T(), err, repository.ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestUpdateAvatar() {
	ctx := context.Background()

	id, err := s.accounts.Create(ctx, &domain.Account{Name: "Ann", Email: "ann@x.com", Password: "pw"})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.accounts.UpdateAvatar(ctx, id, "/uploads/abc.png"))

	account, err := s.accounts.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/uploads/abc.png", account.AvatarPath)
	assert.Equal(s.T(), "Ann", account.Name)
	assert.Equal(s.T(), "pw", account.Password)
}

func (s *AccountRepositorySuite) TestUpdateAvatarMissingAccount() {
	err := s.accounts.UpdateAvatar(context.Background(), 99, "/uploads/abc.png")
	assert.ErrorIs(s.T(), err, repository.ErrAccountNotFound)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}
