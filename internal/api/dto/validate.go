package dto

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/hrdesk/pkg/util"
)

var validate = validator.New()

// Validate checks struct tags and maps failures to a validation error.
func Validate(payload any) error {
	if err := validate.Struct(payload); err != nil {
		details := map[string]any{}
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		return apperrors.NewValidationError("invalid payload", details)
	}
	return nil
}
