package utils

// Typed failure taxonomy surfaced by the service layer. Handlers map these
// onto HTTP statuses; anything else is a generic 500.

// NotFoundError signals that a referenced record is absent.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string { return e.Message }

// ConflictError signals a uniqueness violation (duplicate email or group).
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// UnauthorizedError signals an access-gate failure. The message is generic
// on purpose; no detail about why is leaked to the caller.
type UnauthorizedError struct {
	Message string
}

func (e UnauthorizedError) Error() string { return e.Message }

// BadRequestError signals malformed or incomplete input outside the
// field-level validation path.
type BadRequestError struct {
	Message string
}

func (e BadRequestError) Error() string { return e.Message }

// ValidationError carries field-level failures keyed by field path so the
// UI can focus the offending input.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string { return "validation failed" }
