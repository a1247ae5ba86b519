package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/go-playground/validator/v10"
)

// Global validator instance (reused across all handlers)
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures by the payload's json field name, not the Go name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate decodes the request body into req and runs field
// validation. Required-field failures come back as a
// models.ValidationError listing the missing fields, so no storage is
// touched for an incomplete payload.
func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return validateRequest(req)
}

func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation failed: %w", err)
	}

	missing := make([]string, 0, len(ve))
	var formatErr error
	for _, fieldError := range ve {
		if fieldError.Tag() == "required" {
			missing = append(missing, fieldError.Field())
			continue
		}
		if formatErr == nil {
			formatErr = fmt.Errorf("field %s %s", fieldError.Field(), formatValidationError(fieldError))
		}
	}

	if len(missing) > 0 {
		return &models.ValidationError{Fields: missing}
	}
	return formatErr
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have a minimum of %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have a maximum of %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
