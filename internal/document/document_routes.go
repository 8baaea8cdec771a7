package document

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	documents := rg.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.POST("/upload", middleware.RBACAuthorize(rbacService, "document", "manage_self"), h.Upload)
		documents.GET("/my-documents", middleware.RBACAuthorize(rbacService, "document", "manage_self"), h.GetMyDocuments)
		documents.GET("/:id", middleware.RBACAuthorize(rbacService, "document", "manage_self"), h.Download)
		documents.DELETE("/:id", middleware.RBACAuthorize(rbacService, "document", "manage_self"), h.Delete)
	}
}
