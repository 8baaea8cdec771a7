package employee

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	employees := rg.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetAll)
		employees.GET("/options", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetOptions)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetByID)
		employees.POST("",
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employee", "delete"), handler.Delete)
	}
}
