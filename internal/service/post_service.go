package service

import (
	"context"

	"spacebook/internal/domain"
	"spacebook/internal/repository"
)

// PostService coordinates feed operations backed by repositories.
type PostService interface {
	CreatePost(ctx context.Context, author *domain.Account, content, imagePath string) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

// CreatePost appends a post to the feed. The author's display name is
// captured on the post at creation time and never re-synced. A post with
// neither content nor image is accepted.
func (s *postService) CreatePost(ctx context.Context, author *domain.Account, content, imagePath string) (*domain.Post, error) {
	post := &domain.Post{
		AccountID:  author.ID,
		AuthorName: author.Name,
		Content:    content,
		ImagePath:  imagePath,
	}

	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}
