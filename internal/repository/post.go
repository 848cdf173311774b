package repository

import (
	"context"

	"spacebook/internal/domain"
)

// PostRepository exposes persistence operations for feed posts.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	List(ctx context.Context) ([]domain.Post, error)
}
