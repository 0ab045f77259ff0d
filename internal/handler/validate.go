package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// registerRequest is the registration payload.
type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest is the login payload. It is deliberately not validated
// beyond decoding: any mismatch collapses into the one generic
// unauthorized message.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateProfileRequest is the partial profile update payload. Absent
// fields are preserved.
type updateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// createPostRequest is the post creation payload. Trim-emptiness is
// checked by the service.
type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updatePostRequest is the partial post update payload.
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// validationMessage turns the first validator failure into the message
// the API contract fixes for that field and rule.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "max" {
			return "Name is too long"
		}
		return "Name cannot be empty"
	case "Email":
		if fe.Tag() == "max" {
			return "Email is too long"
		}
		return "Invalid email format"
	case "Password":
		return "Password must be at least 8 characters"
	}
	return "Invalid request"
}
