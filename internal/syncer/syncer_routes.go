package syncer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sync := r.Group("/sync")
	{
		sync.GET("/pull", h.Pull)
		sync.POST("/push", h.Push)
	}
}
