package logic

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"cmdboard/internal/domain"
)

// CaseMode selects how letter case is compared
type CaseMode int

const (
	// CaseSmart compares exactly when the query has an upper-case letter, case-insensitively otherwise
	CaseSmart CaseMode = iota
	CaseSensitive
	CaseInsensitive
)

// ParseCaseMode maps a config value to a CaseMode; unknown values fall back to smart
func ParseCaseMode(s string) CaseMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sensitive", "exact":
		return CaseSensitive
	case "insensitive", "ignore":
		return CaseInsensitive
	default:
		return CaseSmart
	}
}

func (m CaseMode) String() string {
	switch m {
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	default:
		return "smart"
	}
}

// MatchOptions selects the substring policy
type MatchOptions struct {
	Case CaseMode
}

// DefaultMatchOptions is smart-case substring matching
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{Case: CaseSmart}
}

// Matches reports whether name contains query under opts
func Matches(name, query string, opts MatchOptions) bool {
	if query == "" {
		return true
	}
	exact := opts.Case == CaseSensitive ||
		(opts.Case == CaseSmart && strings.ToLower(query) != query)
	if exact {
		return strings.Contains(name, query)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// Filter returns the items whose name contains query, in their original order.
// An empty query returns items unchanged.
func Filter(items []domain.Item, query string, opts MatchOptions) []domain.Item {
	if query == "" {
		return items
	}
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if Matches(item.Name(), query, opts) {
			out = append(out, item)
		}
	}
	return out
}

// FilterGroups filters each group and drops the ones left empty
func FilterGroups(groups []domain.Group, query string, opts MatchOptions) []domain.Group {
	out := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		items := Filter(g.Items, query, opts)
		if len(items) == 0 {
			continue
		}
		out = append(out, domain.Group{Heading: g.Heading, Items: items})
	}
	return out
}

// Suggest returns the item name closest to query by edit distance, for "did you mean" hints.
// Only reasonably close names qualify; ties go to the earlier item.
func Suggest(items []domain.Item, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, item := range items {
		name := item.Name()
		d := levenshtein.ComputeDistance(q, strings.ToLower(name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}

	if bestDist < 0 || bestDist > len([]rune(q))/3+1 {
		return "", false
	}
	return best, true
}
