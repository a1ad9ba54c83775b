package auth

import (
	"dayflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		// Credential guessing is the only brute-forceable surface; throttle it.
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
	}
}
