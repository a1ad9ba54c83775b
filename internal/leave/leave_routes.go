package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", h.GetAll)
		leaves.POST("", h.Submit)
		leaves.PUT("/:id/status", h.SetStatus)
	}
}
