package employeeerrors

import (
	"net/http"

	"dayflow/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid joinDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidLoginID = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid Login ID. Please check and try again.",
		http.StatusUnauthorized,
	)
	ErrIncorrectPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Incorrect password. Please try again.",
		http.StatusUnauthorized,
	)
)
