package shared

import "errors"

var (

	// common errors
	ErrorNotFound = errors.New("not found")
	ErrorInternal = errors.New("internal error")

	// registration / validation errors
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// credential errors; the message is deliberately generic so the caller
	// cannot tell whether the email or the password was wrong
	ErrorUnauthorized = errors.New("invalid credentials")

	// session lifecycle errors
	ErrorSessionExpired = errors.New("session expired")

	// reset-code lifecycle errors; a missing code is a bad request, not a
	// missing resource, so it gets its own sentinel instead of ErrorNotFound
	ErrorCodeNotFound = errors.New("no code requested")
	ErrorCodeExpired  = errors.New("code expired")
	ErrorCodeMismatch = errors.New("code mismatch")

	// collaborator errors
	ErrorDelivery = errors.New("delivery failed")
)
