package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":       "{field} is required",
		"notblank":       "{field} must not be blank",
		"gt":             "{field} must be greater than {param}",
		"gte":            "{field} must be greater than or equal to {param}",
		"lte":            "{field} must be less than or equal to {param}",
		"oneof":          "{field} must be one of {param}",
		"max":            "{field} must be less than or equal to {param}",
		"min":            "{field} must be greater than or equal to {param}",
		"email":          "{field} must be a valid email address",
		"notplaceholder": "{field} must be a real address, not an import placeholder",
	}
)

// message renders every failed rule and returns the names of the offending fields.
func message(err error) (string, []string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		msgs := make([]string, 0, len(valErrors))
		fields := make([]string, 0, len(valErrors))

		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr == "" {
				errStr = valErr.Error()
			} else {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)
			}

			msgs = append(msgs, errStr)
			fields = append(fields, field)
		}

		return strings.Join(msgs, "; "), fields
	}

	return err.Error(), nil
}
