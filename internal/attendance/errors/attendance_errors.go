package attendanceerrors

import (
	"go-clocker/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already clocked in",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not clocked in",
		http.StatusConflict,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeForbidden,
		"This account is not linked to an employee",
		http.StatusForbidden,
	)
	ErrInvalidWorkplace = apperror.New(
		apperror.CodeInvalidInput,
		"Workplace must be office or home",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Action must be clock-in or clock-out",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Range end must not be before its start and may span at most 366 days",
		http.StatusBadRequest,
	)
	ErrInvalidQRToken = apperror.New(
		"INVALID_QR_TOKEN",
		"QR code is invalid or has expired",
		http.StatusUnauthorized,
	)
	ErrQRTokenUsed = apperror.New(
		"QR_TOKEN_USED",
		"QR code was already used",
		http.StatusConflict,
	)
	ErrQRCompanyMismatch = apperror.New(
		apperror.CodeForbidden,
		"QR code belongs to another company",
		http.StatusForbidden,
	)
	ErrFaceImageRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A face image is required",
		http.StatusBadRequest,
	)
	ErrFaceNotRecognized = apperror.New(
		"FACE_NOT_RECOGNIZED",
		"Face was not recognized",
		http.StatusUnprocessableEntity,
	)
	ErrFaceServiceUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Face recognition service is unavailable",
		http.StatusServiceUnavailable,
	)
)
