package directory

import (
	errors "github.com/yarnuri/stampclock/internal"
	"github.com/yarnuri/stampclock/internal/core/common/validation"
)

type CreateUserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (d CreateUserDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).
		Required(errors.ErrCodeMissingUsername).
		MaxLength(50)
	v.Field("password", d.Password).
		Required(errors.ErrCodeValidationFailed).
		MaxLength(255)
	v.Field("name", d.Name).
		Required(errors.ErrCodeValidationFailed).
		MaxLength(100)
	v.Field("role", d.Role).
		OneOf(errors.ErrCodeValidationFailed, RoleEmployee, RoleAdmin)
	return v.Validate()
}

// UpdateUserDTO carries a full roster row edit. Password is optional; when
// empty the stored hash is kept.
type UpdateUserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (d UpdateUserDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("id", d.ID).
		Required(errors.ErrCodeMissingUserID)
	v.Field("username", d.Username).
		Required(errors.ErrCodeMissingUsername).
		MaxLength(50)
	v.Field("password", d.Password).
		MaxLength(255)
	v.Field("name", d.Name).
		Required(errors.ErrCodeValidationFailed).
		MaxLength(100)
	v.Field("role", d.Role).
		OneOf(errors.ErrCodeValidationFailed, RoleEmployee, RoleAdmin)
	return v.Validate()
}

type DeleteUserResponse struct {
	Success bool `json:"success"`
}
