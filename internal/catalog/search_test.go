package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(components []Component) []string {
	out := make([]string, 0, len(components))
	for _, c := range components {
		out = append(out, c.ID)
	}

	return out
}

func TestSearch_Scenario(t *testing.T) {
	reg := scenarioRegistry(t)

	assert.Equal(t, []string{"button"}, ids(reg.Search("but")))
}

func TestSearch_EmptyQuery(t *testing.T) {
	reg := embedded(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		got := reg.Search(q)
		assert.NotNil(t, got)
		assert.Empty(t, got, "query %q", q)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	reg := embedded(t)

	lower := ids(reg.Search("button"))
	upper := ids(reg.Search("BUTTON"))
	mixed := ids(reg.Search("bUtToN"))

	require.NotEmpty(t, lower)

	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("BUTTON results differ (-button +BUTTON):\n%s", diff)
	}

	if diff := cmp.Diff(lower, mixed); diff != "" {
		t.Errorf("bUtToN results differ (-button +bUtToN):\n%s", diff)
	}
}

func TestSearch_Ranking(t *testing.T) {
	reg, err := New(
		[]CategoryInfo{{Category: "misc"}},
		[]Component{
			{ID: "alpha", Name: "Alpha", Category: "misc", Description: "mentions spiral in text"},
			{ID: "beta", Name: "Beta", Category: "misc", Tags: []string{"spiral-ish"}},
			{ID: "gamma", Name: "Spiral Gamma", Category: "misc"},
			{ID: "spiral", Name: "Delta", Category: "misc"},
			{ID: "epsilon", Name: "Epsilon", Category: "misc", Description: "another spiral"},
			{ID: "zeta", Name: "Zeta", Category: "misc"},
		},
	)
	require.NoError(t, err)

	want := []string{"spiral", "gamma", "beta", "alpha", "epsilon"}
	if diff := cmp.Diff(want, ids(reg.Search("SPIRAL"))); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_Fields(t *testing.T) {
	reg := embedded(t)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "by id", query: "hex-grid", want: "hex-grid"},
		{name: "by display name", query: "navigation menu", want: "navigation-menu"},
		{name: "by tag", query: "snackbar", want: "toast"},
		{name: "by description", query: "golden-angle", want: "fibonacci-spiral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(reg.Search(tt.query))
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestSearch_NoMatch(t *testing.T) {
	reg := embedded(t)

	got := reg.Search("zzz-no-such-component")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
