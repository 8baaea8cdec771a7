package recruitmenterrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job posting not found",
		http.StatusNotFound,
	)

	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job id",
		http.StatusBadRequest,
	)

	ErrJobNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Job posting is not accepting applications",
		http.StatusBadRequest,
	)

	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)

	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate id",
		http.StatusBadRequest,
	)

	ErrInvalidStageTransition = apperror.New(
		apperror.CodeInvalidState,
		"Candidate can only advance to the next stage or be rejected",
		http.StatusBadRequest,
	)

	ErrCandidateTerminal = apperror.New(
		apperror.CodeInvalidState,
		"Candidate is already in a terminal stage",
		http.StatusBadRequest,
	)
)
