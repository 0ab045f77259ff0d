package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

// AuthHandler handles registration, login, and profile HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /auth/register
// Request:  {"name":"...","email":"...","password":"..."}
// Response: {"message":"...","data":{user}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation Error", validationMessage(err))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Validation Error", "Name cannot be empty")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Conflict", "User with this email already exists")
			return
		}
		writeInternalError(w, "register user", err)
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("User: %s registered successfully", user.Name), toUserDTO(user))
}

// HandleLogin processes a JSON login request. An unknown email and a wrong
// password yield the same generic message.
// POST /auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"message":"Login successful","data":{token, user}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
			return
		}
		writeInternalError(w, "login user", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", LoginDTO{Token: token, User: toUserDTO(user)})
}

// HandleProfile returns the authenticated caller's public projection. The
// subject id comes only from the verified token, never from the path.
// GET /auth/profile
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())

	user, err := h.auth.GetUserByID(r.Context(), subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "User not found")
			return
		}
		writeInternalError(w, "get profile", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Profile retrieved successfully", toUserDTO(user))
}

// HandleUpdateProfile applies a partial update to the caller's own record.
// PUT /auth/profile
// Request: {"name":..., "email":..., "password":...} (all optional)
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())

	var req updateProfileRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation Error", validationMessage(err))
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Validation Error", "Name cannot be empty")
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), subject, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "User not found")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "Conflict", "User with this email already exists")
		default:
			writeInternalError(w, "update profile", err)
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Profile updated successfully", toUserDTO(user))
}
