package apperror

// Stable machine-readable codes carried in every error envelope. Clients
// branch on these, so renaming one is a breaking API change.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	CodeInternalError = "INTERNAL_ERROR"
)
