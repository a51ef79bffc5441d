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
	KindConflict       ErrKind = "conflict"       // 400 (duplicate email has always been a 400 in this API)
	KindInfrastructure ErrKind = "infrastructure" // 500
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Hint: optional secondary user-facing text (auth middleware messages)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Hint    string
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

func WithHint(err *Error, hint string) *Error {
	err.Hint = hint
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
	return Wrap(KindValidation, "invalid_json", "Invalid request body", cause)
}

func ErrMissingField(field string) *Error {
	return New(KindValidation, "missing_field", fmt.Sprintf("%s is required", field))
}

func ErrPasswordRequired() *Error {
	return New(KindValidation, "password_required", "Password is required")
}

func ErrAlreadyVerified() *Error {
	return New(KindValidation, "already_verified", "Email already verified")
}

func ErrInvalidVerificationCode() *Error {
	return New(KindValidation, "invalid_verification_code", "Invalid verification code")
}

func ErrInvalidID(cause error) *Error {
	return Wrap(KindValidation, "invalid_id", "Invalid id", cause)
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: used for both unknown-email and wrong-password login failures
// so callers cannot probe which accounts exist.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid email or password")
}

func ErrAccountUnverified() *Error {
	return New(KindAuth, "account_unverified", "Please verify your email before logging in")
}

func ErrTokenMissing() *Error {
	return WithHint(New(KindAuth, "token_missing", "Access token required"),
		"Please login to access this resource")
}

func ErrTokenInvalid() *Error {
	return WithHint(New(KindAuth, "token_invalid", "Authentication failed"),
		"Invalid token, please login again")
}

func ErrTokenExpired() *Error {
	return WithHint(New(KindAuth, "token_expired", "Authentication failed"),
		"Session expired, please login again")
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrAdminRequired() *Error {
	return WithHint(New(KindForbidden, "admin_required", "Admin access required"),
		"You need admin privileges for this action")
}

func ErrCustomerRequired() *Error {
	return WithHint(New(KindForbidden, "customer_required", "Customer access required"),
		"This resource is for customers only")
}

func ErrAccessDenied() *Error {
	return New(KindForbidden, "access_denied", "Access denied")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrCustomerNotFound() *Error {
	return New(KindNotFound, "customer_not_found", "Customer not found")
}

// ----------------------
// Conflict (400 in this API)
// ----------------------

func ErrEmailAlreadyExists() *Error {
	return New(KindConflict, "email_already_exists", "Email already registered")
}

// ----------------------
// Infrastructure / internal (500)
// ----------------------

func ErrServerConfig() *Error {
	return New(KindInternal, "server_config", "Server configuration error")
}

func ErrStorage(cause error) *Error {
	return Wrap(KindInfrastructure, "storage_failed", "Storage operation failed", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "Password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "Token signing failed", cause)
}

func ErrRandomFailed(cause error) *Error {
	return Wrap(KindInternal, "random_failed", "Random generation failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "Internal error", cause)
}
