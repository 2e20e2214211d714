package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/uikit-mcp-go/internal/catalog"
	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
	"github.com/wagiedev/uikit-mcp-go/internal/install"
)

// ToolName identifies an operation in the dispatch table.
type ToolName string

const (
	ToolListCategories   ToolName = "list-categories"
	ToolListComponents   ToolName = "list-components"
	ToolSearchComponents ToolName = "search-components"
	ToolGetComponent     ToolName = "get-component"
	ToolInstallComponent ToolName = "install-component"
)

// AllTools lists every tool in registration order. NewServer fails if any
// entry lacks a handler.
var AllTools = []ToolName{
	ToolListCategories,
	ToolListComponents,
	ToolSearchComponents,
	ToolGetComponent,
	ToolInstallComponent,
}

type listCategoriesArgs struct{}

// listComponentsArgs uses a pointer so an absent category (no filter) is
// distinguishable from an empty one, which is rejected as invalid.
type listComponentsArgs struct {
	Category *string `json:"category,omitempty" jsonschema:"only list components in this category; see list-categories"`
}

type searchComponentsArgs struct {
	Query string `json:"query" jsonschema:"text matched case-insensitively against id, name, tags and description"`
}

type getComponentArgs struct {
	ID string `json:"id" jsonschema:"component identifier, e.g. button"`
}

type installComponentArgs struct {
	ID         string `json:"id" jsonschema:"component identifier to install"`
	TargetPath string `json:"targetPath" jsonschema:"destination directory relative to the project root"`
	Overwrite  bool   `json:"overwrite,omitempty" jsonschema:"replace files that already exist"`
}

// CategoryEntry is one row of the list-categories result.
type CategoryEntry struct {
	Category    catalog.Category `json:"category"`
	Description string           `json:"description"`
	Count       int              `json:"count"`
}

// CategoryListing is the list-categories result.
type CategoryListing struct {
	Categories []CategoryEntry `json:"categories"`
}

// ComponentListing is the list-components result.
type ComponentListing struct {
	Category   catalog.Category  `json:"category,omitempty"`
	Components []catalog.Summary `json:"components"`
	Count      int               `json:"count"`
}

// SearchListing is the search-components result.
type SearchListing struct {
	Query      string            `json:"query"`
	Components []catalog.Summary `json:"components"`
	Count      int               `json:"count"`
}

var readOnly = &mcp.ToolAnnotations{ReadOnlyHint: true, IdempotentHint: true}

// buildTools assembles the dispatch table.
func (s *Server) buildTools() (map[ToolName]*toolSpec, error) {
	specs := make([]*toolSpec, 0, len(AllTools))

	add := func(spec *toolSpec, err error) error {
		if err != nil {
			return err
		}

		specs = append(specs, spec)

		return nil
	}

	errs := []error{
		add(bind(ToolListCategories,
			"List the component categories with descriptions and member counts.",
			readOnly, s.listCategories)),
		add(bind(ToolListComponents,
			"List component summaries, optionally restricted to one category.",
			readOnly, s.listComponents)),
		add(bind(ToolSearchComponents,
			"Search components by keyword. Identifier matches rank above name, tag and description matches.",
			readOnly, s.searchComponents)),
		add(bind(ToolGetComponent,
			"Get full metadata for a component: props, usage examples, tags and dependencies.",
			readOnly, s.getComponent)),
		add(bind(ToolInstallComponent,
			"Copy a component's source files into a directory of the current project.",
			&mcp.ToolAnnotations{Title: "Install component"}, s.installComponent)),
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	table := make(map[ToolName]*toolSpec, len(specs))
	for _, spec := range specs {
		table[spec.name] = spec
	}

	for _, tn := range AllTools {
		if _, ok := table[tn]; !ok {
			return nil, fmt.Errorf("tool %s has no handler", tn)
		}
	}

	return table, nil
}

func (s *Server) listCategories(_ context.Context, _ listCategoriesArgs) (any, error) {
	cats := s.registry.Categories()
	out := CategoryListing{Categories: make([]CategoryEntry, 0, len(cats))}

	for _, ci := range cats {
		out.Categories = append(out.Categories, CategoryEntry{
			Category:    ci.Category,
			Description: ci.Description,
			Count:       s.registry.CategoryCount(ci.Category),
		})
	}

	return out, nil
}

func (s *Server) listComponents(_ context.Context, in listComponentsArgs) (any, error) {
	if in.Category == nil {
		summaries := catalog.Summaries(s.registry.All())

		return ComponentListing{Components: summaries, Count: len(summaries)}, nil
	}

	category := catalog.Category(*in.Category)

	members, err := s.registry.ByCategory(category)
	if err != nil {
		return nil, err
	}

	summaries := catalog.Summaries(members)

	return ComponentListing{
		Category:   category,
		Components: summaries,
		Count:      len(summaries),
	}, nil
}

func (s *Server) searchComponents(_ context.Context, in searchComponentsArgs) (any, error) {
	summaries := catalog.Summaries(s.registry.Search(in.Query))

	return SearchListing{Query: in.Query, Components: summaries, Count: len(summaries)}, nil
}

func (s *Server) getComponent(_ context.Context, in getComponentArgs) (any, error) {
	return s.registry.Get(in.ID)
}

func (s *Server) installComponent(ctx context.Context, in installComponentArgs) (any, error) {
	if !s.registry.Has(in.ID) {
		return nil, &regerrors.NotFoundError{ID: in.ID}
	}

	if s.installer == nil {
		return nil, &regerrors.UnsupportedOperationError{
			Operation: string(ToolInstallComponent),
			Err:       regerrors.ErrInstallUnavailable,
		}
	}

	return s.installer.Install(ctx, install.Request{
		ID:         in.ID,
		TargetPath: in.TargetPath,
		Overwrite:  in.Overwrite || s.overwrite,
	})
}
