package catalog

import (
	"errors"
	"fmt"
	"slices"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

// Registry is the immutable mapping from component identifier to metadata.
type Registry struct {
	categories []CategoryInfo
	components []Component
	byID       map[string]int
	byCategory map[Category][]int
}

// New validates the given categories and components and builds a Registry.
//
// Identifiers and display names must be non-empty, identifiers unique,
// categories unique, and every component's category must belong to the
// category set. Insertion order of both slices is preserved.
func New(categories []CategoryInfo, components []Component) (*Registry, error) {
	if len(components) == 0 {
		return nil, regerrors.ErrEmptyCatalog
	}

	r := &Registry{
		categories: make([]CategoryInfo, 0, len(categories)),
		components: make([]Component, 0, len(components)),
		byID:       make(map[string]int, len(components)),
		byCategory: make(map[Category][]int, len(categories)),
	}

	for _, ci := range categories {
		if ci.Category == "" {
			return nil, errors.New("category label must not be empty")
		}

		if _, dup := r.byCategory[ci.Category]; dup {
			return nil, fmt.Errorf("duplicate category %q", ci.Category)
		}

		r.byCategory[ci.Category] = []int{}
		r.categories = append(r.categories, ci)
	}

	for _, c := range components {
		if c.ID == "" {
			return nil, errors.New("component id must not be empty")
		}

		if c.Name == "" {
			return nil, fmt.Errorf("component %q: name must not be empty", c.ID)
		}

		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate component id %q", c.ID)
		}

		idx, ok := r.byCategory[c.Category]
		if !ok {
			return nil, fmt.Errorf("component %q: %w", c.ID, r.invalidCategory(c.Category))
		}

		pos := len(r.components)
		r.components = append(r.components, c.clone())
		r.byID[c.ID] = pos
		r.byCategory[c.Category] = append(idx, pos)
	}

	return r, nil
}

// Get returns the metadata for id, or a NotFoundError.
func (r *Registry) Get(id string) (Component, error) {
	pos, ok := r.byID[id]
	if !ok {
		return Component{}, &regerrors.NotFoundError{ID: id}
	}

	return r.components[pos].clone(), nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]

	return ok
}

// Names returns every identifier in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.components))
	for _, c := range r.components {
		out = append(out, c.ID)
	}

	return out
}

// Count returns the number of registered components.
func (r *Registry) Count() int {
	return len(r.components)
}

// All returns a copy of every component in insertion order.
func (r *Registry) All() []Component {
	out := make([]Component, 0, len(r.components))
	for _, c := range r.components {
		out = append(out, c.clone())
	}

	return out
}

// ByCategory returns the components in category, in insertion order.
// The result is empty, not nil, for a valid category with no members.
// An InvalidCategoryError is returned for a category outside the set.
func (r *Registry) ByCategory(category Category) ([]Component, error) {
	idx, ok := r.byCategory[category]
	if !ok {
		return nil, r.invalidCategory(category)
	}

	out := make([]Component, 0, len(idx))
	for _, pos := range idx {
		out = append(out, r.components[pos].clone())
	}

	return out, nil
}

// Categories returns the category set in declaration order.
func (r *Registry) Categories() []CategoryInfo {
	return slices.Clone(r.categories)
}

// ValidCategory reports whether category belongs to the category set.
func (r *Registry) ValidCategory(category Category) bool {
	_, ok := r.byCategory[category]

	return ok
}

// CategoryCount returns the number of components in category, or zero for
// categories outside the set.
func (r *Registry) CategoryCount(category Category) int {
	return len(r.byCategory[category])
}

func (r *Registry) invalidCategory(category Category) error {
	valid := make([]string, 0, len(r.categories))
	for _, ci := range r.categories {
		valid = append(valid, string(ci.Category))
	}

	return &regerrors.InvalidCategoryError{Category: string(category), Valid: valid}
}
