// Package catalog provides the component registry: an immutable, in-memory
// catalog of UI component metadata and the queries served over it.
//
// A Registry is built once from static source data (the embedded YAML
// document or a file) and never mutated afterwards. Accessors return copies,
// so a Registry can be shared freely between goroutines.
package catalog

import "slices"

// Category is a label from the registry's fixed category enumeration.
type Category string

// CategoryInfo describes one category of the enumeration.
type CategoryInfo struct {
	Category    Category `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
}

// Prop describes one prop a component accepts.
type Prop struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Required bool   `yaml:"required" json:"required"`
	Default  string `yaml:"default,omitempty" json:"default,omitempty"`
}

// Component holds the metadata for a single registered component.
type Component struct {
	// ID is the unique identifier (e.g. "button").
	ID string `yaml:"id" json:"id"`
	// Name is the human-readable display name.
	Name string `yaml:"name" json:"name"`
	// Category is one of the registry's categories.
	Category Category `yaml:"category" json:"category"`
	// Description is free text shown in listings.
	Description string `yaml:"description" json:"description"`
	// Props lists prop signatures in declaration order.
	Props []Prop `yaml:"props,omitempty" json:"props,omitempty"`
	// Usage holds usage example snippets.
	Usage []string `yaml:"usage,omitempty" json:"usage,omitempty"`
	// Tags are optional search keywords.
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Dependencies are the packages the component source imports.
	Dependencies []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// Summary is the condensed form of a Component used in listings.
type Summary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// Summary returns the listing form of the component.
func (c Component) Summary() Summary {
	return Summary{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
	}
}

// HasTag reports whether the component carries the given tag.
func (c Component) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// RequiredProps returns the names of the props marked required.
func (c Component) RequiredProps() []string {
	var out []string

	for _, p := range c.Props {
		if p.Required {
			out = append(out, p.Name)
		}
	}

	return out
}

// clone returns a copy that shares no slices with c.
func (c Component) clone() Component {
	c.Props = slices.Clone(c.Props)
	c.Usage = slices.Clone(c.Usage)
	c.Tags = slices.Clone(c.Tags)
	c.Dependencies = slices.Clone(c.Dependencies)

	return c
}

// Summaries converts components to their listing form.
func Summaries(components []Component) []Summary {
	out := make([]Summary, 0, len(components))
	for _, c := range components {
		out = append(out, c.Summary())
	}

	return out
}
