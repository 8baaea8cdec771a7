package attendanceerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"Already punched in for today",
		http.StatusConflict,
	)

	ErrNotPunchedIn = apperror.New(
		apperror.CodeInvalidState,
		"No punch-in found for today",
		http.StatusBadRequest,
	)

	ErrAlreadyPunchedOut = apperror.New(
		apperror.CodeInvalidState,
		"Already punched out for today",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)
)
