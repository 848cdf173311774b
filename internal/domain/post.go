package domain

import "time"

// Post is a single feed entry. AuthorName is denormalized from the owning
// account at creation time and is never re-synced afterwards.
type Post struct {
	ID         int64
	AccountID  int64
	AuthorName string
	Content    string
	ImagePath  string
	CreatedAt  time.Time
}
