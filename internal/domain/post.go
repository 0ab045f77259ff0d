package domain

import (
	"context"
	"time"
)

// Post is a blog post owned by a single user. AuthorID is fixed at
// creation and cannot change afterwards.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostWithAuthor pairs a post with its author for read endpoints that
// return the joined projection.
type PostWithAuthor struct {
	Post
	Author User
}

// PostUpdate describes a partial post update. Nil fields are left unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostRepository defines persistence operations for posts.
//
// Update and Delete take the caller's user id and enforce ownership:
// a missing post yields ErrNotFound and an ownership mismatch yields
// ErrForbidden. Handlers collapse the two outward so that non-owners
// cannot probe for post existence.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetWithAuthor(ctx context.Context, id string) (*PostWithAuthor, error)
	// ListAllWithAuthors returns every post joined with its author, newest first.
	ListAllWithAuthors(ctx context.Context) ([]PostWithAuthor, error)
	// ListByAuthor returns one user's posts, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]Post, error)
	Update(ctx context.Context, id, authorID string, upd PostUpdate) (*Post, error)
	Delete(ctx context.Context, id, authorID string) error
}
