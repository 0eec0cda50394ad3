package graph

import (
	"errors"
	"log/slog"

	"github.com/minicart/minicart-go/internal/crypto"
	"github.com/minicart/minicart-go/internal/repository"
	"github.com/minicart/minicart-go/internal/service"
)

// Error codes surfaced to clients in the "extensions.code" field of a
// GraphQL error. INTERNAL marks infrastructure faults the client may retry;
// every other code is a logical failure of the request itself.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeDuplicateEmail        = "DUPLICATE_EMAIL"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeTokenExpired          = "TOKEN_EXPIRED"
	CodeTokenInvalidSignature = "TOKEN_INVALID_SIGNATURE"
	CodeTokenMalformed        = "TOKEN_MALFORMED"
	CodeNotFound              = "NOT_FOUND"
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeInternal              = "INTERNAL"
)

// Error is a resolver error carrying a machine-readable code. The graphql
// library copies Extensions() into the response's error object.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// mapError translates service, repository and crypto sentinels into typed
// resolver errors. Anything unrecognized is an infrastructure fault: it is
// logged server-side and collapsed to INTERNAL so no datastore detail leaks.
func mapError(err error) *Error {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrEmailInvalid),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrProductNameRequired),
		errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrNegativePrice),
		errors.Is(err, service.ErrQuantityInvalid):
		return newError(CodeValidation, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return newError(CodeDuplicateEmail, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return newError(CodeInvalidCredentials, err.Error())
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrProductNotFound):
		return newError(CodeNotFound, err.Error())
	case errors.Is(err, crypto.ErrTokenExpired):
		return newError(CodeTokenExpired, err.Error())
	case errors.Is(err, crypto.ErrTokenInvalidSignature):
		return newError(CodeTokenInvalidSignature, err.Error())
	case errors.Is(err, crypto.ErrTokenMalformed):
		return newError(CodeTokenMalformed, err.Error())
	default:
		slog.Error("internal error", "error", err)
		return newError(CodeInternal, "internal server error")
	}
}
