package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("/status", h.AllStatuses)
		attendance.GET("/:userId", h.History)
		attendance.GET("/:userId/stats", h.Stats)
		attendance.GET("/:userId/status", h.CurrentStatus)
		attendance.POST("", h.Record)
		attendance.POST("/:userId/check-in", h.CheckIn)
		attendance.POST("/:userId/check-out", h.CheckOut)
	}
}
