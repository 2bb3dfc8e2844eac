// Package apierrors defines the errors the service surfaces to its callers.
// Every error carries a Kind and the gRPC code the transport should answer with.
package apierrors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
)

// Kind classifies an APIError.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindOwnershipViolation Kind = "ownership_violation"
	KindConflict           Kind = "conflict"
	KindInvalidOperation   Kind = "invalid_operation"
	KindAccessDenied       Kind = "access_denied"
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidCredentials Kind = "invalid_credentials"
)

// APIError is an error whose message is safe to return to the caller.
type APIError struct {
	Kind     Kind
	GRPCCode codes.Code
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches another APIError of the same kind. A target with a message
// matches only that exact message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// KindOf returns the kind of the first APIError in err's chain.
func KindOf(err error) (Kind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func newErr(kind Kind, code codes.Code, format string, args ...any) *APIError {
	return &APIError{Kind: kind, GRPCCode: code, Message: fmt.Sprintf(format, args...)}
}

func NewErrUserNotFound(id uuid.UUID) *APIError {
	return newErr(KindNotFound, codes.NotFound, "user not found with id: %s", id)
}

func NewErrUserNotFoundByUsername(username string) *APIError {
	return newErr(KindNotFound, codes.NotFound, "user not found with username: %s", username)
}

func NewErrCardNotFound(id uuid.UUID) *APIError {
	return newErr(KindNotFound, codes.NotFound, "card not found with id: %s", id)
}

// NewErrCardNotOwnedByUser is returned both for foreign and for missing cards,
// so the caller cannot tell which one it hit.
func NewErrCardNotOwnedByUser(cardID, userID uuid.UUID) *APIError {
	return newErr(KindOwnershipViolation, codes.NotFound,
		"card with id %q isn't owned by user with id %q or doesn't exist", cardID, userID)
}

func NewErrCardStatusAlreadySet(cardID uuid.UUID) *APIError {
	return newErr(KindConflict, codes.AlreadyExists, "card status already set for id: %s", cardID)
}

func NewErrUsernameTaken(username string) *APIError {
	return newErr(KindConflict, codes.AlreadyExists, "user with username %q already exists", username)
}

func NewErrInvalidOperation(reason string) *APIError {
	return newErr(KindInvalidOperation, codes.InvalidArgument, "%s", reason)
}

func NewErrAccessDenied() *APIError {
	return newErr(KindAccessDenied, codes.PermissionDenied, "access denied")
}

func NewErrUnauthenticated() *APIError {
	return newErr(KindUnauthenticated, codes.Unauthenticated, "authentication required for this operation")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newErr(KindUnauthenticated, codes.Unauthenticated, "missing authorization token")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newErr(KindUnauthenticated, codes.Unauthenticated, "invalid authorization token")
}

func NewErrBadCredentials() *APIError {
	return newErr(KindInvalidCredentials, codes.InvalidArgument, "bad credentials")
}
