package attendance

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := rg.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/punch-in", middleware.RBACAuthorize(rbacService, "attendance", "punch"), h.PunchIn)
		attendances.POST("/punch-out", middleware.RBACAuthorize(rbacService, "attendance", "punch"), h.PunchOut)
		attendances.GET("/today", middleware.RBACAuthorize(rbacService, "attendance", "read_self"), h.GetToday)
		attendances.GET("/my-attendance", middleware.RBACAuthorize(rbacService, "attendance", "read_self"), h.GetMyAttendance)
		attendances.GET("/all", middleware.RBACAuthorize(rbacService, "attendance", "read_all"), h.GetAll)
	}
}
