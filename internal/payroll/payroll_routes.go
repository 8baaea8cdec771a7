package payroll

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	payroll := rg.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.POST("/structure", middleware.RBACAuthorize(rbacService, "payroll", "manage"), h.SaveStructure)
		payroll.GET("/structure/:employeeId", middleware.RBACAuthorize(rbacService, "payroll", "manage"), h.GetStructure)
		payroll.POST("/generate",
			middleware.RBACAuthorize(rbacService, "payroll", "manage"),
			middleware.Idempotency(rdb),
			h.Generate,
		)
		payroll.GET("/my-payslips", middleware.RBACAuthorize(rbacService, "payroll", "read_self"), h.GetMyPayslips)
		payroll.GET("/all", middleware.RBACAuthorize(rbacService, "payroll", "manage"), h.GetAll)
		payroll.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "payroll", "manage"), h.UpdateStatus)
		payroll.GET("/:id/payslip.pdf", middleware.RBACAuthorize(rbacService, "payroll", "read_self"), h.DownloadPayslip)
	}
}
