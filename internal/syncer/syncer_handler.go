package syncer

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
	l := zap.L().Named("syncer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("syncer.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("sync request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Pull(c *gin.Context) {
	snap, err := h.service.Pull(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snap)
}

func (h *Handler) Push(c *gin.Context) {
	// All three collections are optional in the body; absent ones default to
	// empty and upsert nothing.
	var snap Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	if err := h.service.Push(c.Request.Context(), snap); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}
