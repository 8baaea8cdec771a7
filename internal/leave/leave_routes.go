package leave

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	leaves := rg.Group("/leave")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("/apply", middleware.RBACAuthorize(rbacService, "leave", "apply"), h.Apply)
		leaves.GET("/my-leaves", middleware.RBACAuthorize(rbacService, "leave", "read_self"), h.GetMyLeaves)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leave", "approve"), h.GetPending)
		leaves.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "leave", "approve"), h.Decide)
	}
}
