package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown to visitors
var FieldLabels = map[string]string{
	"Name":    "nombre",
	"Email":   "email",
	"Phone":   "teléfono",
	"Service": "servicio",
	"Message": "mensaje",
}

// MissingFields returns the labels of every field that failed a "required" rule,
// in struct order. Non-validation errors yield nil.
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var missing []string
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			missing = append(missing, getFieldLabel(e.Field()))
		}
	}
	return missing
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return strings.ToLower(fieldName)
}
