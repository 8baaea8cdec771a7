package autherrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to generate token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"you do not have permission to perform this action",
		http.StatusForbidden,
	)
)
