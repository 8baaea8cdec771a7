package auth

import (
	"net/http"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Uniform failure shape regardless of cause.
		response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", "invalid email or password", nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	userResp, err := ctrl.service.GetMe(c.Request.Context(), userID.(string))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}
