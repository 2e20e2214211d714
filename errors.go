package uikit

import "github.com/wagiedev/uikit-mcp-go/internal/errors"

// Re-export error types from internal package

// RegistryError is the base interface for all registry errors.
type RegistryError = errors.RegistryError

// ErrorKind classifies an error for callers on the other side of the protocol.
type ErrorKind = errors.Kind

// NotFoundError indicates an unknown component identifier.
type NotFoundError = errors.NotFoundError

// InvalidCategoryError indicates a category outside the fixed enumeration.
type InvalidCategoryError = errors.InvalidCategoryError

// UnsupportedOperationError indicates an unknown or unavailable tool.
type UnsupportedOperationError = errors.UnsupportedOperationError

// MalformedRequestError indicates tool arguments that fail validation.
type MalformedRequestError = errors.MalformedRequestError

// ConflictError indicates an install that would overwrite existing files.
type ConflictError = errors.ConflictError

// Error kinds.
const (
	KindNotFound             = errors.KindNotFound
	KindInvalidCategory      = errors.KindInvalidCategory
	KindUnsupportedOperation = errors.KindUnsupportedOperation
	KindMalformedRequest     = errors.KindMalformedRequest
	KindConflict             = errors.KindConflict
	KindInternal             = errors.KindInternal
)

// Re-export sentinel errors from internal package.
var (
	// ErrInstallUnavailable indicates no install source is configured.
	ErrInstallUnavailable = errors.ErrInstallUnavailable

	// ErrEmptyCatalog indicates a catalog document with no components.
	ErrEmptyCatalog = errors.ErrEmptyCatalog
)

// KindOf reports the kind of the first RegistryError in err's chain, or
// KindInternal.
func KindOf(err error) ErrorKind {
	return errors.KindOf(err)
}
