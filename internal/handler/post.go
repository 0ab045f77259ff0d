package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleCreate creates a post owned by the authenticated caller. The owner
// always comes from the token subject, never from the payload.
// POST /posts
// Request: {"title":"...","content":"..."}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())

	var req createPostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	post, err := h.posts.Create(r.Context(), subject, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		writeInternalError(w, "create post", err)
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("Post '%s' created successfully", post.Title), toPostWithAuthorDTO(post))
}

// HandleGet returns a single post joined with its author.
// GET /posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	post, err := h.posts.GetWithAuthor(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "Post not found")
			return
		}
		writeInternalError(w, "get post", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Post retrieved successfully", toPostWithAuthorDTO(post))
}

// HandleListAll returns every post with its author, newest first.
// GET /posts
func (h *PostHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll(r.Context())
	if err != nil {
		writeInternalError(w, "list posts", err)
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("Retrieved %d posts", len(posts)), toPostWithAuthorDTOs(posts))
}

// HandleMyPosts returns the caller's own posts, newest first, without the
// author join: the caller already knows who the owner is.
// GET /posts/my
func (h *PostHandler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())

	posts, err := h.posts.ListByAuthor(r.Context(), subject)
	if err != nil {
		writeInternalError(w, "list my posts", err)
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("Retrieved %d posts", len(posts)), toPostDTOs(posts))
}

// HandleUpdate applies a partial, ownership-checked update. A missing post
// and a post owned by someone else produce the same response.
// PUT /posts/{id}
// Request: {"title":..., "content":...} (both optional)
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())
	id := r.PathValue("id")

	var req updatePostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	post, err := h.posts.Update(r.Context(), id, subject, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			writeNotFound(w, "Post not found or you don't have permission to update it")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
		default:
			writeInternalError(w, "update post", err)
		}
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("Post '%s' updated successfully", post.Title), toPostWithAuthorDTO(post))
}

// HandleDelete removes a post after the ownership check, with the same
// response collapse as HandleUpdate.
// DELETE /posts/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.posts.Delete(r.Context(), id, subject); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			writeNotFound(w, "Post not found or you don't have permission to delete it")
		default:
			writeInternalError(w, "delete post", err)
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Post deleted successfully", nil)
}
