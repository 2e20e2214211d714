package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for callers on the other side of the protocol.
type Kind string

const (
	// KindNotFound indicates an unknown component identifier.
	KindNotFound Kind = "not_found"
	// KindInvalidCategory indicates a category outside the fixed enumeration.
	KindInvalidCategory Kind = "invalid_category"
	// KindUnsupportedOperation indicates an unknown or unavailable tool.
	KindUnsupportedOperation Kind = "unsupported_operation"
	// KindMalformedRequest indicates arguments that fail schema validation.
	KindMalformedRequest Kind = "malformed_request"
	// KindConflict indicates an install would overwrite existing files.
	KindConflict Kind = "conflict"
	// KindInternal is reported for any error without a more specific kind.
	KindInternal Kind = "internal"
)

// RegistryError is the base interface for all registry errors.
type RegistryError interface {
	error
	Kind() Kind
}

// Compile-time verification that all error types implement RegistryError.
var (
	_ RegistryError = (*NotFoundError)(nil)
	_ RegistryError = (*InvalidCategoryError)(nil)
	_ RegistryError = (*UnsupportedOperationError)(nil)
	_ RegistryError = (*MalformedRequestError)(nil)
	_ RegistryError = (*ConflictError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrInstallUnavailable indicates no install source is configured.
	ErrInstallUnavailable = errors.New("install source not configured")

	// ErrEmptyCatalog indicates a catalog document with no components.
	ErrEmptyCatalog = errors.New("catalog has no components")
)

// NotFoundError indicates a component identifier absent from the registry.
type NotFoundError struct {
	ID string
	// What names the missing thing; defaults to "component".
	What string
}

func (e *NotFoundError) Error() string {
	what := e.What
	if what == "" {
		what = "component"
	}

	return fmt.Sprintf("%s %q not found", what, e.ID)
}

// Kind implements RegistryError.
func (e *NotFoundError) Kind() Kind { return KindNotFound }

// InvalidCategoryError indicates a category outside the fixed enumeration.
type InvalidCategoryError struct {
	Category string
	Valid    []string
}

func (e *InvalidCategoryError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("invalid category %q", e.Category)
	}

	return fmt.Sprintf("invalid category %q (valid: %s)", e.Category, strings.Join(e.Valid, ", "))
}

// Kind implements RegistryError.
func (e *InvalidCategoryError) Kind() Kind { return KindInvalidCategory }

// UnsupportedOperationError indicates a tool name the server does not handle,
// or one that is registered but cannot run in the current configuration.
type UnsupportedOperationError struct {
	Operation string
	Err       error
}

func (e *UnsupportedOperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported operation %q: %v", e.Operation, e.Err)
	}

	return fmt.Sprintf("unsupported operation %q", e.Operation)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return e.Err
}

// Kind implements RegistryError.
func (e *UnsupportedOperationError) Kind() Kind { return KindUnsupportedOperation }

// MalformedRequestError indicates tool arguments that fail validation.
type MalformedRequestError struct {
	Tool string
	Err  error
}

func (e *MalformedRequestError) Error() string {
	if e.Tool == "" {
		return fmt.Sprintf("malformed request: %v", e.Err)
	}

	return fmt.Sprintf("malformed request for %s: %v", e.Tool, e.Err)
}

func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}

// Kind implements RegistryError.
func (e *MalformedRequestError) Kind() Kind { return KindMalformedRequest }

// ConflictError indicates an install that would overwrite existing files.
// Paths are relative to the install root.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("refusing to overwrite existing files: %s", strings.Join(e.Paths, ", "))
}

// Kind implements RegistryError.
func (e *ConflictError) Kind() Kind { return KindConflict }

// KindOf reports the kind of the first RegistryError in err's chain.
// Errors outside the registry's taxonomy are KindInternal.
func KindOf(err error) Kind {
	var re RegistryError
	if errors.As(err, &re) {
		return re.Kind()
	}

	return KindInternal
}
