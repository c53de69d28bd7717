package payrollerrors

import (
	"net/http"

	"go-clocker/internal/shared/apperror"
)

var (
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id is required",
		http.StatusBadRequest,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"hourly rate cannot be negative",
		http.StatusBadRequest,
	)
)
