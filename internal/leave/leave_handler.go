package leave

import (
	"net/http"

	"dayflow/internal/shared/apperror"
	"dayflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.ID(c, http.StatusCreated, resp.ID)
}

func (h *Handler) GetAll(c *gin.Context) {
	var (
		rows []LeaveResponse
		err  error
	)
	if userID := c.Query("userId"); userID != "" {
		rows, err = h.service.GetByUser(c.Request.Context(), userID)
	} else {
		rows, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if rows == nil {
		rows = []LeaveResponse{}
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	if _, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}
