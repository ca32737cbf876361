package stamp

import (
	errors "github.com/yarnuri/stampclock/internal"
	"github.com/yarnuri/stampclock/internal/core/common/validation"
)

type RecordStampDTO struct {
	Username string `json:"username"`
	Type     string `json:"type"`
}

func (d RecordStampDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).
		Required(errors.ErrCodeMissingUsername).
		MaxLength(50)
	v.Field("type", d.Type).
		Required(errors.ErrCodeInvalidStampType).
		OneOf(errors.ErrCodeInvalidStampType, TypeIn, TypeOut)
	return v.Validate()
}

type StatusDTO struct {
	Username string `json:"username"`
}

func (d StatusDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).
		Required(errors.ErrCodeMissingUsername)
	return v.Validate()
}

type RecordStampResponse struct {
	Success     bool  `json:"success"`
	StampID     int64 `json:"stampId"`
	IsStampedIn bool  `json:"isStampedIn"`
}

type HistoryResponse struct {
	History []*Event `json:"history"`
}
