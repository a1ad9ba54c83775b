package leaveerrors

import (
	"net/http"

	"dayflow/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"startDate must be before or equal endDate",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyFinalized = apperror.New(
		apperror.CodeInvalidState,
		"leave request is no longer pending",
		http.StatusBadRequest,
	)
)
