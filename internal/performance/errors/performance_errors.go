package performanceerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrAppraisalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appraisal not found",
		http.StatusNotFound,
	)

	ErrInvalidAppraisalID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid appraisal id",
		http.StatusBadRequest,
	)

	ErrInvalidGoal = apperror.New(
		apperror.CodeInvalidInput,
		"Every KPI needs a title",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Appraisal status can only move to its immediate successor",
		http.StatusBadRequest,
	)

	ErrMissingManagerRatings = apperror.New(
		apperror.CodeInvalidState,
		"All KPIs need a manager rating before completion",
		http.StatusBadRequest,
	)

	ErrNotReviewer = apperror.New(
		apperror.CodeForbidden,
		"Only the assigned reviewer can do that",
		http.StatusForbidden,
	)

	ErrNotAppraisalOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the appraised employee can do that",
		http.StatusForbidden,
	)
)
