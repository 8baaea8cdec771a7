package recruitment

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	// Careers surface, reachable without a token.
	public := rg.Group("/recruitment/public")
	{
		public.GET("/jobs", h.GetPublicJobs)
		public.POST("/apply", h.Apply)
	}

	recruitment := rg.Group("/recruitment")
	recruitment.Use(middleware.AuthMiddleware())
	{
		recruitment.POST("/jobs", middleware.RBACAuthorize(rbacService, "recruitment", "manage"), h.CreateJob)
		recruitment.GET("/jobs", middleware.RBACAuthorize(rbacService, "recruitment", "read"), h.GetJobs)
		recruitment.POST("/candidates", middleware.RBACAuthorize(rbacService, "recruitment", "manage"), h.AddCandidate)
		recruitment.GET("/candidates", middleware.RBACAuthorize(rbacService, "recruitment", "read"), h.GetCandidates)
		recruitment.PUT("/candidates/:id/status", middleware.RBACAuthorize(rbacService, "recruitment", "manage"), h.UpdateCandidateStatus)
		recruitment.POST("/candidates/:id/schedule", middleware.RBACAuthorize(rbacService, "recruitment", "manage"), h.ScheduleInterview)
	}
}
