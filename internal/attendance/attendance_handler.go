package attendance

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
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CheckIn(c *gin.Context) {
	rec, err := h.service.CheckIn(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rec)
}

func (h *Handler) CheckOut(c *gin.Context) {
	rec, err := h.service.CheckOut(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	// rec is nil when there was nothing to close; the body is null then.
	response.JSON(c, http.StatusOK, rec)
}

func (h *Handler) History(c *gin.Context) {
	rows, err := h.service.History(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if rows == nil {
		rows = []Attendance{}
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.MonthlyStats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

func (h *Handler) CurrentStatus(c *gin.Context) {
	status, err := h.service.CurrentStatus(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": status})
}

func (h *Handler) AllStatuses(c *gin.Context) {
	statuses, err := h.service.AllStatuses(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, statuses)
}

func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	id, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.ID(c, http.StatusOK, id)
}
