package handler

import (
	"time"

	"github.com/msomdec/inkpost/internal/domain"
)

// UserDTO is the public JSON projection of a user. It never carries the
// password hash.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// LoginDTO is the login response: a bearer token plus the public user.
type LoginDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// PostDTO is the JSON representation of a post without its author.
type PostDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// PostWithAuthorDTO is a post joined with its author's public projection.
type PostWithAuthorDTO struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Author    UserDTO `json:"author"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toPostWithAuthorDTO(p *domain.PostWithAuthor) PostWithAuthorDTO {
	return PostWithAuthorDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    toUserDTO(&p.Author),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostWithAuthorDTOs(posts []domain.PostWithAuthor) []PostWithAuthorDTO {
	dtos := make([]PostWithAuthorDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostWithAuthorDTO(&posts[i])
	}
	return dtos
}
