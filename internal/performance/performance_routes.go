package performance

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	performances := rg.Group("/performance")
	performances.Use(middleware.AuthMiddleware())
	{
		performances.POST("/create", middleware.RBACAuthorize(rbacService, "performance", "create"), h.Create)
		performances.GET("/my-appraisals", middleware.RBACAuthorize(rbacService, "performance", "read_self"), h.GetMyAppraisals)
		performances.GET("/pending-reviews", middleware.RBACAuthorize(rbacService, "performance", "review"), h.GetPendingReviews)
		performances.PUT("/:id/update", middleware.RBACAuthorize(rbacService, "performance", "update"), h.Update)
	}
}
