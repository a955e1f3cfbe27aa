package helper

import (
	ozzo "github.com/go-ozzo/ozzo-validation"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/data"
)

var Field = ozzo.Field

// ValidateStruct runs the given field rules and flattens the result into
// per-field errors the API can return verbatim. names maps struct field
// names to the wire names clients know them by.
func ValidateStruct(names map[string]string, s interface{}, fields ...*ozzo.FieldRules) []data.ValidationErrorData {
	err := ozzo.ValidateStruct(s, fields...)
	if err == nil {
		return nil
	}

	var errors []data.ValidationErrorData
	if validationErrors, ok := err.(ozzo.Errors); ok {
		for field, ferr := range validationErrors {
			errors = append(errors, data.ValidationErrorData{
				Field:   displayName(field, names),
				Message: ferr.Error(),
			})
		}
	}
	return errors
}

func displayName(field string, names map[string]string) string {
	if name, exists := names[field]; exists {
		return name
	}
	return field
}
