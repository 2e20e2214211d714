// Package errors defines the error types reported by the component registry
// and its MCP adapter.
//
// Every error a caller can act on implements RegistryError and carries a
// Kind. The MCP adapter uses the kind to build structured error responses,
// so each type maps to exactly one kind. All types support unwrapping and
// can be checked with errors.Is and errors.As.
package errors
