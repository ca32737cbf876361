package auth

import (
	errors "github.com/yarnuri/stampclock/internal"
	"github.com/yarnuri/stampclock/internal/directory"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (d LoginDTO) Validate() *errors.AppError {
	if d.Username == "" {
		return errors.NewValidationFieldError("username", "username is required", errors.ErrCodeMissingUsername)
	}
	if d.Password == "" {
		return errors.NewValidationFieldError("password", "password is required", errors.ErrCodeValidationFailed)
	}
	return nil
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        *directory.User `json:"user"`
}
