package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindInfrastructure ErrKind = "infrastructure" // 503
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Meta: optional details (field, reason, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithMeta(New(KindValidation, "missing_field", "missing required field"), map[string]string{
		"field": field,
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

// Login failures are always this one error, whether the email is unknown or
// the password is wrong (avoid user enumeration). Surfaced as 400 to match
// the public contract.
func ErrInvalidCredentials() *Error {
	return New(KindValidation, "invalid_credentials", "Invalid email or password")
}

// ErrEmailAlreadyExists is the registration duplicate outcome, reached from
// the pre-check or from an insert conflict losing the race.
func ErrEmailAlreadyExists() *Error {
	return New(KindValidation, "email_already_exists", "User with this email already exists")
}

// ----------------------
// Auth errors (401)
// ----------------------

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "no token provided")
}

// ErrTokenInvalid covers every validation failure: bad signature, expiry,
// wrong issuer or audience, malformed input. Callers receive one outcome;
// the cause is kept only for diagnostics.
func ErrTokenInvalid(cause error) *Error {
	return Wrap(KindAuth, "token_invalid", "invalid token", cause)
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrPolicyDenied(policy string) *Error {
	return WithMeta(New(KindForbidden, "policy_denied", "insufficient permissions"), map[string]string{
		"policy": policy,
	})
}

// ----------------------
// Not found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "user not found")
}

func ErrBookNotFound() *Error {
	return New(KindNotFound, "book_not_found", "book not found")
}

// ----------------------
// Conflict (409)
// ----------------------

// ErrDuplicateEmail is the storage-level unique violation. The auth service
// translates it into ErrEmailAlreadyExists before it reaches the boundary.
func ErrDuplicateEmail(cause error) *Error {
	return Wrap(KindConflict, "duplicate_email", "email already registered", cause)
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrMissingConfig(name string) *Error {
	return WithMeta(New(KindInternal, "missing_config", "missing required configuration"), map[string]string{
		"name": name,
	})
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
