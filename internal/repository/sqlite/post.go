package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/inkpost/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, post.Title, post.Content, post.AuthorID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, author_id, created_at, updated_at
		 FROM posts WHERE id = ?`, id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepository) GetWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	p := &domain.PostWithAuthor{}
	err := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
		        u.id, u.name, u.email, u.created_at, u.updated_at
		 FROM posts p
		 JOIN users u ON p.author_id = u.id
		 WHERE p.id = ?`, id,
	).Scan(
		&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name, &p.Author.Email, &p.Author.CreatedAt, &p.Author.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post with author: %w", err)
	}
	return p, nil
}

func (r *PostRepository) ListAllWithAuthors(ctx context.Context) ([]domain.PostWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
		        u.id, u.name, u.email, u.created_at, u.updated_at
		 FROM posts p
		 JOIN users u ON p.author_id = u.id
		 ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query posts with authors: %w", err)
	}
	defer rows.Close()

	var posts []domain.PostWithAuthor
	for rows.Next() {
		var p domain.PostWithAuthor
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.Email, &p.Author.CreatedAt, &p.Author.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post with author: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, author_id, created_at, updated_at
		 FROM posts WHERE author_id = ?
		 ORDER BY created_at DESC`, authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("query posts by author: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update applies the non-nil fields of upd after checking that the post
// exists and belongs to authorID. When no supplied field differs from the
// stored value, the row is returned as-is and nothing is written.
func (r *PostRepository) Update(ctx context.Context, id, authorID string, upd domain.PostUpdate) (*domain.Post, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Debug("update post: not found", "post_id", id)
		}
		return nil, err
	}
	if post.AuthorID != authorID {
		slog.Debug("update post: caller is not the owner", "post_id", id, "caller_id", authorID)
		return nil, domain.ErrForbidden
	}

	changed := false
	if upd.Title != nil && *upd.Title != post.Title {
		post.Title = *upd.Title
		changed = true
	}
	if upd.Content != nil && *upd.Content != post.Content {
		post.Content = *upd.Content
		changed = true
	}

	if !changed {
		return post, nil
	}

	post.UpdatedAt = time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		post.Title, post.Content, post.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete removes the post after checking that it exists and belongs to
// authorID. See Update for the ErrNotFound/ErrForbidden split.
func (r *PostRepository) Delete(ctx context.Context, id, authorID string) error {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Debug("delete post: not found", "post_id", id)
		}
		return err
	}
	if post.AuthorID != authorID {
		slog.Debug("delete post: caller is not the owner", "post_id", id, "caller_id", authorID)
		return domain.ErrForbidden
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
