package auth

import (
	"errors"
	"net/http"

	"dayflow/internal/employee"
	"dayflow/internal/shared/apperror"
	"dayflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	employees employee.Service
	logger    *zap.Logger
}

func NewHandler(employees employee.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{employees: employees, logger: l}
}

// Login validates a loginId/password pair. Failures are part of the normal
// response shape ({success:false, error:...}), not HTTP errors, so the client
// can show the precise reason inline.
func (h *Handler) Login(c *gin.Context) {
	var req employee.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	user, err := h.employees.ValidateCredentials(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.CodeUnauthorized {
			h.logger.Debug("login rejected", zap.String("login_id", req.LoginID))
			response.JSON(c, http.StatusOK, employee.LoginResult{
				Success: false,
				Error:   appErr.Message,
			})
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	h.logger.Info("login success", zap.String("user_id", user.ID))
	response.JSON(c, http.StatusOK, employee.LoginResult{
		Success: true,
		User:    &user,
	})
}
