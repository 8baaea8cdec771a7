package employeeerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date_of_birth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfJoining = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date_of_joining format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department, designation or manager reference",
		http.StatusBadRequest,
	)
)
