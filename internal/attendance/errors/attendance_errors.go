package attendanceerrors

import (
	"net/http"

	"dayflow/internal/shared/apperror"
)

var ErrDuplicateDay = apperror.New(
	apperror.CodeConflict,
	"an attendance record already exists for this user and date",
	http.StatusConflict,
)
