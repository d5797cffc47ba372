package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateModelConfig checks the struct tags of a model config after its API
// type has been normalized.
func ValidateModelConfig(m *ModelConfig) error {
	m.APIType = NormalizeAPIType(string(m.APIType))
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
