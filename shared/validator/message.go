package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"datetime": "{field} must match the format {param}",
	"notblank": "{field} must not be blank",
	"rollno":   "{field} must be a valid roll number",
	"alphanum": "{field} must contain only letters and digits",
	"nefield":  "{field} must differ from {param}",
}

// lengthMessages replace the numeric wording for string and slice fields.
var lengthMessages = map[string]string{
	"max": "{field} must be at most {param} characters",
	"min": "{field} must be at least {param} characters",
}

// message renders the first validation failure that has a known wording.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template := messages[fieldErr.Tag()]

		if fieldErr.Kind() == reflect.String {
			if length, ok := lengthMessages[fieldErr.Tag()]; ok {
				template = length
			}
		}

		if template == "" {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
	}

	return fieldErrors.Error()
}
