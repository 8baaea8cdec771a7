package attendance

import (
	"net/http"
	"strconv"

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
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) PunchIn(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	var req PunchInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
	}

	resp, err := h.service.PunchIn(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) PunchOut(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.PunchOut(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetToday(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.GetToday(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMyAttendance(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.GetMyAttendance(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}
