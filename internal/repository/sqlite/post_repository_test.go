package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"spacebook/internal/domain"
	"spacebook/internal/repository"
)

type PostRepositorySuite struct {
	suite.Suite
	db        *sql.DB
	posts     repository.PostRepository
	accountID int64
}

func (s *PostRepositorySuite) SetupTest() {
	db, err := Open(":memory:")
	require.NoError(s.T(), err)
	s.db = db

	accounts := NewAccountRepository(db)
	require.NoError(s.T(), accounts.Init(context.Background()))
	s.posts = NewPostRepository(db)
	require.NoError(s.T(), s.posts.Init(context.Background()))

	id, err := accounts.Create(context.Background(), &domain.Account{
		Name: "Ann", Email: "ann@x.com", Password: "pw",
	})
	require.NoError(s.T(), err)
	s.accountID = id
}

func (s *PostRepositorySuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *PostRepositorySuite) TestCreateAndList() {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := s.posts.Create(ctx, &domain.Post{
			AccountID:  s.accountID,
			AuthorName: "Ann",
			Content:    fmt.Sprintf("post %d", i),
		})
		require.NoError(s.T(), err)
	}

	posts, err := s.posts.List(ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), posts, 3)

	// newest first; equal timestamps fall back to descending id
	assert.Equal(s.T(), "post 3", posts[0].Content)
	assert.Equal(s.T(), "post 2", posts[1].Content)
	assert.Equal(s.T(), "post 1", posts[2].Content)
	for i := 0; i < len(posts)-1; i++ {
		assert.False(s.T(), posts[i].CreatedAt.Before(posts[i+1].CreatedAt))
	}
}

func (s *PostRepositorySuite) TestEmptyPostAccepted() {
	ctx := context.Background()

	_, err := s.posts.Create(ctx, &domain.Post{AccountID: s.accountID, AuthorName: "Ann"})
	require.NoError(s.T(), err)

	posts, err := s.posts.List(ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), posts, 1)
	assert.Empty(s.T(), posts[0].Content)
	assert.Empty(s.T(), posts[0].ImagePath)
}

func (s *PostRepositorySuite) TestListEmptyFeed() {
	posts, err := s.posts.List(context.Background())
	require.NoError(s.T(), err)
	assert.Empty(s.T(), posts)
}

func (s *PostRepositorySuite) TestForeignKeyEnforced() {
	_, err := s.posts.Create(context.Background(), &domain.Post{
		AccountID:  9999,
		AuthorName: "Ghost",
		Content:    "should not insert",
	})
	assert.Error(s.T(), err)
}

func TestPostRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostRepositorySuite))
}
