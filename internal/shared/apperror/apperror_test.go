package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-clocker/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("load: %w", apperror.ErrForbidden)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusForbidden, got.Status)
	})

	t.Run("plain error hides its message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	err := apperror.Wrap(base, apperror.CodeInternalError, "failed", http.StatusInternalServerError)
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, "failed: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "failed", 500))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		HourlyRate float64 `json:"hourly_rate" validate:"required"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	err := v.Struct(payload{})

	mapped := apperror.MapValidationError(err)
	var appErr *apperror.AppError
	assert.True(t, errors.As(mapped, &appErr))
	assert.Equal(t, "Hourly Rate is required", appErr.Message)

	mapped = apperror.MapValidationError(errors.New("not a validation error"))
	assert.True(t, errors.As(mapped, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestMapValidationError_RuleMessages(t *testing.T) {
	type payload struct {
		LeaveType string  `json:"leave_type" validate:"oneof=ANNUAL SICK UNPAID"`
		PageSize  int     `json:"page_size" validate:"max=100"`
		Rate      float64 `json:"hourly_rate" validate:"gte=0"`
		ID        string  `json:"employee_id" validate:"omitempty,uuid"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	tests := []struct {
		name string
		in   payload
		want string
	}{
		{"oneof", payload{LeaveType: "HOLIDAY"}, "Leave Type must be one of: ANNUAL, SICK, UNPAID"},
		{"max", payload{LeaveType: "SICK", PageSize: 500}, "Page Size must be at most 100"},
		{"gte", payload{LeaveType: "SICK", Rate: -1}, "Hourly Rate must be at least 0"},
		{"other tags", payload{LeaveType: "SICK", ID: "nope"}, "Employee Id is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appErr *apperror.AppError
			assert.True(t, errors.As(apperror.MapValidationError(v.Struct(tt.in)), &appErr))
			assert.Equal(t, tt.want, appErr.Message)
		})
	}
}

func TestWithDetails(t *testing.T) {
	err := apperror.ErrForbidden.WithDetails(map[string]string{"required": "report:read"})

	got := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusForbidden, got.Status)
	assert.Equal(t, map[string]string{"required": "report:read"}, got.Details)
	assert.Nil(t, apperror.ErrForbidden.Details)
}

func TestMapValidationError_Details(t *testing.T) {
	type payload struct {
		From string `json:"from" validate:"required"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	got := apperror.ToHTTP(apperror.MapValidationError(v.Struct(payload{})))
	assert.Equal(t, map[string]string{"field": "from", "rule": "required"}, got.Details)
}
