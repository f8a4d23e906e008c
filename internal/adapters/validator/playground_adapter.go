package validator

import (
	"errors"
	"fmt"
	validatorPlatform "itemservice/internal/platform/validator"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"itemservice/internal/platform/validation"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &playgroundValidator{
		validate: validate,
	}
}

// Validate reports each failed tag as a field violation whose code is the
// tag name, so messages resolve through the same catalog as domain rules.
func (v *playgroundValidator) Validate(objectName string, s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	violations := validation.NewViolations(objectName)
	for _, fe := range validationErrors {
		violations.AddFieldViolation(&validation.FieldViolation{
			Field:     fe.Field(),
			FieldType: validation.TypeNameOf(fe.Type()),
			Rejected:  validation.TypedValue(fe.Value()),
			ErrorCode: fe.Tag(),
			Args:      tagArguments(fe),
			Default:   getValidationErrorMessage(fe),
		})
	}
	violations.Seal()

	return &validatorPlatform.ValidationError{Violations: violations}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func tagArguments(e validator.FieldError) []any {
	if e.Param() == "" {
		return nil
	}
	return []any{e.Param()}
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return maxMessage(e.Kind(), e.Param())
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	case "excluded_without":
		return fmt.Sprintf("This field is only allowed together with %s", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}

// maxMessage words the max bound the way the tag applies it to each kind.
func maxMessage(kind reflect.Kind, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("This field must be at most %s characters long", param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("This field must contain at most %s items", param)
	default:
		return fmt.Sprintf("This field must be at most %s", param)
	}
}
