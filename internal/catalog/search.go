package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// Match tiers, best first.
const (
	tierID = iota
	tierName
	tierTag
	tierDescription
	tierNone
)

// Search returns the components whose id, display name, tags or description
// contain query, compared case-insensitively.
//
// Results are ordered by the best field that matched (id, then name, then
// tag, then description); ties keep insertion order. A blank query returns
// an empty slice rather than the whole registry.
func (r *Registry) Search(query string) []Component {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Component{}
	}

	type hit struct {
		pos  int
		tier int
	}

	var hits []hit

	for pos, c := range r.components {
		if tier := matchTier(c, q); tier != tierNone {
			hits = append(hits, hit{pos: pos, tier: tier})
		}
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(a.tier, b.tier)
	})

	out := make([]Component, 0, len(hits))
	for _, h := range hits {
		out = append(out, r.components[h.pos].clone())
	}

	return out
}

// matchTier returns the best tier at which c matches the lowercased query.
func matchTier(c Component, q string) int {
	switch {
	case strings.Contains(strings.ToLower(c.ID), q):
		return tierID
	case strings.Contains(strings.ToLower(c.Name), q):
		return tierName
	case slices.ContainsFunc(c.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	}):
		return tierTag
	case strings.Contains(strings.ToLower(c.Description), q):
		return tierDescription
	default:
		return tierNone
	}
}
