package event

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	events := rg.Group("/events")
	events.Use(middleware.AuthMiddleware())
	{
		events.GET("", middleware.RBACAuthorize(rbacService, "event", "read"), h.GetAll)
		events.POST("", middleware.RBACAuthorize(rbacService, "event", "manage"), h.Create)
		events.DELETE("/:id", middleware.RBACAuthorize(rbacService, "event", "manage"), h.Delete)
	}
}
