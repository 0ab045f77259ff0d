package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/inkpost/internal/domain"
)

// PostService handles creation, retrieval, and ownership-checked mutation
// of posts.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create validates and stores a new post for authorID, then re-reads it
// joined with its author for the response. The author always comes from
// the authenticated caller, never from the payload.
func (s *PostService) Create(ctx context.Context, authorID, title, content string) (*domain.PostWithAuthor, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: post title cannot be empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: post content cannot be empty", domain.ErrInvalidInput)
	}

	post := &domain.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// Re-read by our own freshly generated id. A miss here means the store
	// lost the row, which is an internal failure, not a not-found.
	full, err := s.posts.GetWithAuthor(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("load created post: %v", err)
	}
	return full, nil
}

// GetWithAuthor returns a single post joined with its author.
func (s *PostService) GetWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	return s.posts.GetWithAuthor(ctx, id)
}

// ListAll returns every post joined with its author, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]domain.PostWithAuthor, error) {
	return s.posts.ListAllWithAuthors(ctx)
}

// ListByAuthor returns one user's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// Update applies a partial, ownership-checked update and returns the post
// joined with its author. ErrNotFound and ErrForbidden pass through for the
// handler to collapse into one response.
func (s *PostService) Update(ctx context.Context, id, callerID string, title, content *string) (*domain.PostWithAuthor, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, fmt.Errorf("%w: post title cannot be empty", domain.ErrInvalidInput)
	}
	if content != nil && strings.TrimSpace(*content) == "" {
		return nil, fmt.Errorf("%w: post content cannot be empty", domain.ErrInvalidInput)
	}

	post, err := s.posts.Update(ctx, id, callerID, domain.PostUpdate{Title: title, Content: content})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return nil, err
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	full, err := s.posts.GetWithAuthor(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("load updated post: %v", err)
	}
	return full, nil
}

// Delete removes a post after the ownership check. ErrNotFound and
// ErrForbidden pass through for the handler to collapse.
func (s *PostService) Delete(ctx context.Context, id, callerID string) error {
	err := s.posts.Delete(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return err
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
