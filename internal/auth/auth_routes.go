package auth

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
