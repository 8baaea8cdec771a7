package document

import (
	"net/http"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	ownerID := c.GetString("employee_id")

	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), ownerID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetMyDocuments(c *gin.Context) {
	ownerID := c.GetString("employee_id")

	resp, err := h.service.GetMyDocuments(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Download(c *gin.Context) {
	ownerID := c.GetString("employee_id")

	doc, err := h.service.Download(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+doc.FileName)
	c.Data(http.StatusOK, "application/octet-stream", doc.FileData)
}

func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetString("employee_id")

	if err := h.service.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
