package designation

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	designations := rg.Group("/designations")

	designations.Use(middleware.AuthMiddleware())

	{
		designations.GET("", middleware.RBACAuthorize(rbacService, "designation", "read"), h.GetAll)
		designations.POST("", middleware.RBACAuthorize(rbacService, "designation", "create"), h.Create)
		designations.GET("/:id", middleware.RBACAuthorize(rbacService, "designation", "read"), h.GetByID)
		designations.PUT("/:id", middleware.RBACAuthorize(rbacService, "designation", "update"), h.Update)
		designations.DELETE("/:id", middleware.RBACAuthorize(rbacService, "designation", "delete"), h.Delete)
	}
}
