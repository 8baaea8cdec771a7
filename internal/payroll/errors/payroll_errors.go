package payrollerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"No salary structure found for this employee",
		http.StatusNotFound,
	)

	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)

	ErrPayslipExists = apperror.New(
		apperror.CodeConflict,
		"A payslip already exists for this employee and pay period",
		http.StatusConflict,
	)

	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payslip id",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Payslip status can only move forward",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Draft, Published or Paid",
		http.StatusBadRequest,
	)

	ErrPayslipNotRendered = apperror.New(
		apperror.CodeNotFound,
		"Payslip PDF has not been rendered yet",
		http.StatusNotFound,
	)
)
