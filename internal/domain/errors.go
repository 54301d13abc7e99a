// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT transport errors.
// Adapters map them to HTTP statuses or CLI exit codes.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrStorageAbsent indicates a storage slot has never been written.
	// Callers treat it as a first run, not as a failure.
	ErrStorageAbsent = errors.New("storage slot absent")

	// ErrStorageCorrupt indicates a stored value could not be decoded.
	ErrStorageCorrupt = errors.New("storage corrupt")

	// ErrParse indicates user-supplied data could not be parsed.
	ErrParse = errors.New("parse failure")

	// ErrNetwork indicates the remote API could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrServer indicates the remote API answered with a non-2xx status.
	ErrServer = errors.New("server error")

	// ErrDecode indicates the remote API answered with an unusable body.
	ErrDecode = errors.New("decode error")

	// ErrUnavailable indicates a capability is switched off by configuration.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageCorruptError reports a slot whose content failed to decode.
type StorageCorruptError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *StorageCorruptError) Error() string {
	return fmt.Sprintf("storage slot %q is corrupt: %v", e.Key, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *StorageCorruptError) Unwrap() error {
	return ErrStorageCorrupt
}

// NewStorageCorruptError creates a corrupt storage error for key.
func NewStorageCorruptError(key string, err error) error {
	return &StorageCorruptError{Key: key, Err: err}
}

// ParseError reports input that is not valid JSON of the expected shape.
type ParseError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Source, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// NewParseError creates a parse error for the named source.
func NewParseError(source string, err error) error {
	return &ParseError{Source: source, Err: err}
}

// NetworkError reports a remote call that never produced a response.
type NetworkError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}

// NewNetworkError creates a network error.
func NewNetworkError(service, operation string, err error) error {
	return &NetworkError{Service: service, Operation: operation, Err: err}
}

// ServerError reports a remote call answered with a non-2xx status.
type ServerError struct {
	Service   string
	Operation string
	Status    int
	Message   string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s returned HTTP %d: %s", e.Service, e.Operation, e.Status, e.Message)
	}

	return fmt.Sprintf("%s: %s returned HTTP %d", e.Service, e.Operation, e.Status)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ServerError) Unwrap() error {
	return ErrServer
}

// NewServerError creates a server error for the given status.
func NewServerError(service, operation string, status int, message string) error {
	return &ServerError{Service: service, Operation: operation, Status: status, Message: message}
}

// DecodeError reports a remote response body that could not be used.
type DecodeError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding %s response: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// NewDecodeError creates a decode error.
func NewDecodeError(service, operation string, err error) error {
	return &DecodeError{Service: service, Operation: operation, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorageAbsent checks if an error signals a missing storage slot.
func IsStorageAbsent(err error) bool {
	return errors.Is(err, ErrStorageAbsent)
}

// IsStorageCorrupt checks if an error signals an undecodable storage slot.
func IsStorageCorrupt(err error) bool {
	return errors.Is(err, ErrStorageCorrupt)
}

// IsParse checks if an error is a parse failure.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsRemote checks if an error came from the remote API in any form.
func IsRemote(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrServer) || errors.Is(err, ErrDecode)
}

// IsUnavailable checks if an error reports a disabled capability.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
