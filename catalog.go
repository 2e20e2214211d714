package uikit

import (
	"io"

	"github.com/wagiedev/uikit-mcp-go/internal/catalog"
)

// Re-export catalog types from internal/catalog.

// Registry is the immutable component catalog.
type Registry = catalog.Registry

// Component holds the metadata for a single registered component.
type Component = catalog.Component

// Prop describes one prop a component accepts.
type Prop = catalog.Prop

// Category is a label from the registry's fixed category enumeration.
type Category = catalog.Category

// CategoryInfo describes one category.
type CategoryInfo = catalog.CategoryInfo

// Summary is the condensed form of a Component used in listings.
type Summary = catalog.Summary

// NewRegistry validates categories and components and builds a Registry.
func NewRegistry(categories []CategoryInfo, components []Component) (*Registry, error) {
	return catalog.New(categories, components)
}

// LoadCatalog decodes a YAML catalog document.
func LoadCatalog(r io.Reader) (*Registry, error) {
	return catalog.Load(r)
}

// LoadCatalogFile reads a YAML catalog document from path.
func LoadCatalogFile(path string) (*Registry, error) {
	return catalog.LoadFile(path)
}

// DefaultCatalog builds a Registry from the catalog compiled into the binary.
// Each call returns an independent Registry.
func DefaultCatalog() (*Registry, error) {
	return catalog.LoadEmbedded()
}
