package department

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	departments := rg.Group("/departments")

	departments.Use(middleware.AuthMiddleware())

	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", "create"), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetByID)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", "update"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "delete"), h.Delete)
	}
}
