package departmenterrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrDepartmentNameExists = apperror.New(
		apperror.CodeConflict,
		"Department name already exists",
		http.StatusConflict,
	)

	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department id",
		http.StatusBadRequest,
	)

	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department still has employees assigned",
		http.StatusConflict,
	)
)
