package documenterrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)

	ErrInvalidDocumentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid document id",
		http.StatusBadRequest,
	)

	ErrInvalidFile = apperror.New(
		apperror.CodeInvalidInput,
		"File payload is not valid base64",
		http.StatusBadRequest,
	)

	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the owner can delete this document",
		http.StatusForbidden,
	)
)
