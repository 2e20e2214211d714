package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

func scenarioRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := New(
		[]CategoryInfo{
			{Category: "actions", Description: "Controls"},
			{Category: "data-display", Description: "Values"},
			{Category: "layout", Description: "Structure"},
		},
		[]Component{
			{ID: "button", Name: "Button", Category: "actions", Description: "Clickable control"},
			{ID: "badge", Name: "Badge", Category: "data-display", Description: "Small status label"},
		},
	)
	require.NoError(t, err)

	return reg
}

func embedded(t *testing.T) *Registry {
	t.Helper()

	reg, err := LoadEmbedded()
	require.NoError(t, err)

	return reg
}

func TestGetForEveryName(t *testing.T) {
	for _, reg := range []*Registry{scenarioRegistry(t), embedded(t)} {
		for _, id := range reg.Names() {
			c, err := reg.Get(id)
			require.NoError(t, err)
			assert.Equal(t, id, c.ID)
		}
	}
}

func TestCountMatchesNames(t *testing.T) {
	for _, reg := range []*Registry{scenarioRegistry(t), embedded(t)} {
		assert.Equal(t, len(reg.Names()), reg.Count())
	}
}

func TestNamesInsertionOrder(t *testing.T) {
	reg := scenarioRegistry(t)

	assert.Equal(t, []string{"button", "badge"}, reg.Names())
	assert.Equal(t, reg.Names(), reg.Names(), "Names must be stable across calls")
}

func TestGet_NotFound(t *testing.T) {
	reg := scenarioRegistry(t)

	_, err := reg.Get("missing")
	require.Error(t, err)

	var nf *regerrors.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
	assert.False(t, reg.Has("missing"))
	assert.True(t, reg.Has("button"))
}

func TestGet_ReturnsCopy(t *testing.T) {
	reg := embedded(t)

	a, err := reg.Get("button")
	require.NoError(t, err)
	require.NotEmpty(t, a.Props)
	a.Props[0].Name = "mutated"
	a.Tags = append(a.Tags[:0], "mutated")

	b, err := reg.Get("button")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", b.Props[0].Name)
	assert.NotContains(t, b.Tags, "mutated")
}

func TestByCategory(t *testing.T) {
	reg := scenarioRegistry(t)

	actions, err := reg.ByCategory("actions")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "button", actions[0].ID)

	empty, err := reg.ByCategory("layout")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = reg.ByCategory("nonexistent")
	var ic *regerrors.InvalidCategoryError
	require.True(t, errors.As(err, &ic))
	assert.Equal(t, "nonexistent", ic.Category)
	assert.Equal(t, []string{"actions", "data-display", "layout"}, ic.Valid)
}

func TestByCategory_UnionEqualsRegistry(t *testing.T) {
	reg := embedded(t)
	seen := make(map[string]bool, reg.Count())

	for _, ci := range reg.Categories() {
		members, err := reg.ByCategory(ci.Category)
		require.NoError(t, err)
		assert.Equal(t, len(members), reg.CategoryCount(ci.Category))

		for _, c := range members {
			assert.Equal(t, ci.Category, c.Category)
			seen[c.ID] = true
		}
	}

	assert.Len(t, seen, reg.Count())

	for _, id := range reg.Names() {
		assert.True(t, seen[id], "component %s missing from category union", id)
	}
}

func TestNew_Validation(t *testing.T) {
	cats := []CategoryInfo{{Category: "actions", Description: "Controls"}}

	tests := []struct {
		name       string
		categories []CategoryInfo
		components []Component
		wantErr    string
		wantIs     error
	}{
		{
			name:       "empty",
			categories: cats,
			wantIs:     regerrors.ErrEmptyCatalog,
		},
		{
			name:       "empty id",
			categories: cats,
			components: []Component{{Name: "Button", Category: "actions"}},
			wantErr:    "component id must not be empty",
		},
		{
			name:       "empty name",
			categories: cats,
			components: []Component{{ID: "button", Category: "actions"}},
			wantErr:    `component "button": name must not be empty`,
		},
		{
			name:       "duplicate id",
			categories: cats,
			components: []Component{
				{ID: "button", Name: "Button", Category: "actions"},
				{ID: "button", Name: "Button 2", Category: "actions"},
			},
			wantErr: `duplicate component id "button"`,
		},
		{
			name:       "duplicate category",
			categories: append(cats, CategoryInfo{Category: "actions"}),
			components: []Component{{ID: "button", Name: "Button", Category: "actions"}},
			wantErr:    `duplicate category "actions"`,
		},
		{
			name:       "empty category label",
			categories: []CategoryInfo{{Description: "nameless"}},
			components: []Component{{ID: "button", Name: "Button", Category: "actions"}},
			wantErr:    "category label must not be empty",
		},
		{
			name:       "category outside enumeration",
			categories: cats,
			components: []Component{{ID: "badge", Name: "Badge", Category: "data-display"}},
			wantErr:    `invalid category "data-display"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := New(tt.categories, tt.components)
			require.Error(t, err)
			require.Nil(t, reg)

			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}

			if tt.wantErr != "" {
				require.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	components := []Component{
		{ID: "button", Name: "Button", Category: "actions", Tags: []string{"click"}},
	}

	reg, err := New([]CategoryInfo{{Category: "actions"}}, components)
	require.NoError(t, err)

	components[0].Tags[0] = "mutated"
	components[0].Name = "Mutated"

	c, err := reg.Get("button")
	require.NoError(t, err)
	assert.Equal(t, "Button", c.Name)
	assert.Equal(t, []string{"click"}, c.Tags)
}

func TestComponentHelpers(t *testing.T) {
	reg := embedded(t)

	acc, err := reg.Get("accordion")
	require.NoError(t, err)
	assert.Equal(t, []string{"type"}, acc.RequiredProps())
	assert.True(t, acc.HasTag("faq"))
	assert.False(t, acc.HasTag("modal"))

	s := acc.Summary()
	assert.Equal(t, Summary{ID: "accordion", Name: "Accordion", Category: "layout", Description: acc.Description}, s)
	assert.Len(t, Summaries(reg.All()), reg.Count())
}
