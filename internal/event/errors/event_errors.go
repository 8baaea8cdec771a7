package eventerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Event not found",
		http.StatusNotFound,
	)

	ErrInvalidEventID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid event id",
		http.StatusBadRequest,
	)

	ErrInvalidEventDate = apperror.New(
		apperror.CodeInvalidInput,
		"Event date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
