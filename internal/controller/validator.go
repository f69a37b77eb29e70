package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gatherly/backend/internal/dto"
	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s failed on %s", fieldError.Field(), fieldError.Tag()))
		}
		return fmt.Errorf("%w: %s", dto.ErrValidation, strings.Join(messages, "; "))
	}

	return fmt.Errorf("%w: %v", dto.ErrValidation, err)
}
