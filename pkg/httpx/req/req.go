package req

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"nadlan_radar/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

type validationError struct {
	message     string
	description string
}

func (e *validationError) Error() string {
	return e.message
}

func (e *validationError) ErrorCode() errcodes.ErrorCode {
	return errcodes.ValidationError
}

func (e *validationError) Description() string {
	return e.description
}

// Read decodes a JSON request body into dest and validates it.
func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return &validationError{
			message:     fmt.Errorf("json.Decode: %w", err).Error(),
			description: "Invalid JSON",
		}
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return &validationError{
			message:     "validation error",
			description: err.Error(),
		}
	}

	return nil
}
