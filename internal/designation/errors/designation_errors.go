package designationerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrDesignationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Designation not found",
		http.StatusNotFound,
	)

	ErrDesignationTitleExists = apperror.New(
		apperror.CodeConflict,
		"Designation title already exists",
		http.StatusConflict,
	)

	ErrInvalidDesignationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid designation id",
		http.StatusBadRequest,
	)

	ErrInvalidDepartmentRef = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)

	ErrDesignationInUse = apperror.New(
		apperror.CodeConflict,
		"Designation still has employees assigned",
		http.StatusConflict,
	)
)
