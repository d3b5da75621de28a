package auth

import "errors"

// Error codes surfaced in JSON error responses so clients can branch
// without parsing messages.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL_ERROR"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDuplicateAccount indicates the email is already registered.
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by UserStore lookups that match nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenExpired indicates the token TTL has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token is invalid")
)

// ValidationError reports a client-fixable problem with the request fields.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
