package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"spacebook/internal/repository/sqlite"
)

type AccountServiceSuite struct {
	suite.Suite
	db       *sql.DB
	accounts AccountService
}

func (s *AccountServiceSuite) SetupTest() {
	db, err := sqlite.Open(":memory:")
	require.NoError(s.T(), err)
	s.db = db

	repo := sqlite.NewAccountRepository(db)
	require.NoError(s.T(), repo.Init(context.Background()))
	s.accounts = NewAccountService(repo)
}

func (s *AccountServiceSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *AccountServiceSuite) TestSignup() {
	account, err := s.accounts.Signup(context.Background(), "Ann", "ann@x.com", "pw", "2000-01-01", "Mars")
	require.NoError(s.T(), err)
	assert.Positive(s.T(), account.ID)
	assert.Equal(s.T(), "Ann", account.Name)
}

func (s *AccountServiceSuite) TestSignupDuplicateEmail() {
	ctx := context.Background()

	_, err := s.accounts.Signup(ctx, "Ann", "ann@x.com", "pw", "", "")
	require.NoError(s.T(), err)

	_, err = s.accounts.Signup(ctx, "Other Ann", "ann@x.com", "pw2", "", "")
	assert.ErrorIs(s.T(), err, ErrDuplicateEmail)
}

func (s *AccountServiceSuite) TestAuthenticate() {
	ctx := context.Background()

	created, err := s.accounts.Signup(ctx, "Ann", "ann@x.com", "pw", "", "")
	require.NoError(s.T(), err)

	account, err := s.accounts.Authenticate(ctx, "ann@x.com", "pw")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, account.ID)
}

func (s *AccountServiceSuite) TestAuthenticateWrongPassword() {
	ctx := context.Background()

	_, err := s.accounts.Signup(ctx, "Ann", "ann@x.com", "pw", "", "")
	require.NoError(s.T(), err)

	_, err = s.accounts.Authenticate(ctx, "ann@x.com", "wrong")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)

	_, err = s.accounts.Authenticate(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)
}

func (s *AccountServiceSuite) TestAuthenticateExactMatch() {
	ctx := context.Background()

	// stored as supplied; comparison is exact, case included
	_, err := s.accounts.Signup(ctx, "Ann", "ann@x.com", "Secret", "", "")
	require.NoError(s.T(), err)

	_, err = s.accounts.Authenticate(ctx, "ann@x.com", "secret")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)
}

func (s *AccountServiceSuite) TestSetAvatar() {
	ctx := context.Background()

	created, err := s.accounts.Signup(ctx, "Ann", "ann@x.com", "pw", "2000-01-01", "Mars")
	require.NoError(s.T(), err)

	account, err := s.accounts.SetAvatar(ctx, created.ID, "/uploads/new.png")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/uploads/new.png", account.AvatarPath)
	assert.Equal(s.T(), "Ann", account.Name)
	assert.Equal(s.T(), "Mars", account.Network)

	_, err = s.accounts.SetAvatar(ctx, 999, "/uploads/x.png")
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}
