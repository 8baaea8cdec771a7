package leaveerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)

	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave id",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"An overlapping leave request already exists",
		http.StatusConflict,
	)

	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been decided",
		http.StatusBadRequest,
	)

	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"Decision must be Approved or Rejected",
		http.StatusBadRequest,
	)
)
