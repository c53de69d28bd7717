package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label: hourly_rate becomes
// "Hourly Rate".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError reports the first failed binding rule. Field names are
// the json names registered in Init.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())
		details := map[string]string{"field": e.Field(), "rule": e.Tag()}

		var appErr *AppError
		switch e.Tag() {
		case "required":
			appErr = RequiredField(field)
		case "oneof":
			appErr = New(CodeInvalidInput, field+" must be one of: "+strings.ReplaceAll(e.Param(), " ", ", "), http.StatusBadRequest)
		case "max":
			appErr = New(CodeInvalidInput, field+" must be at most "+e.Param(), http.StatusBadRequest)
		case "min", "gte":
			appErr = New(CodeInvalidInput, field+" must be at least "+e.Param(), http.StatusBadRequest)
		default:
			appErr = InvalidField(field)
		}
		appErr.Details = details
		return appErr
	}

	return ErrInvalidInput
}
