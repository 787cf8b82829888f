package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":         "{field} is required",
		"required_without": "{field} is required when {param} is not set",
		"excluded_with":    "{field} must not be set together with {param}",
		"datetime":         "{field} must match the layout {param}",
		"civildate":        "{field} must be a calendar date formatted as 2006-01-02",
		"max":              "{field} must be at most {param} characters long",
		"min":              "{field} must be at least {param} characters long",
		"oneof":            "{field} must be one of {param}",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
