package palette

import (
	"errors"
	"log"

	"cmdboard/internal/config"
	"cmdboard/internal/domain"
	"cmdboard/internal/provider"
)

// Group headings
const (
	HeadingSuggestions = "Suggestions"
	HeadingCommands    = "Commands"
	HeadingPullRequest = "New Pull Request"
	HeadingTeams       = "Teams"
)

// Catalog is the static palette content; fetched items are merged into it per mount
type Catalog struct {
	Links    []domain.Item // trail the fetched suggestions on the root page
	Commands []domain.Item
	Repos    []domain.Item
	Teams    []domain.Item
}

// CatalogFromConfig builds the static content from configuration
func CatalogFromConfig(cfg *config.Config) Catalog {
	var c Catalog
	for _, l := range cfg.Links {
		c.Links = append(c.Links, domain.Suggestion{Title: l.Name, Link: l.URL, Category: l.Category})
	}
	for _, cmd := range cfg.Commands {
		c.Commands = append(c.Commands, domain.Command{Title: cmd.Name, Link: cmd.URL, Target: domain.Page(cmd.Page)})
	}
	for _, r := range cfg.Repos {
		u := r.URL
		if u == "" {
			u = provider.CompareURL("", r.Slug)
		}
		c.Repos = append(c.Repos, domain.RepoTarget{Slug: r.Slug, CompareURL: u})
	}
	for _, m := range cfg.Teams {
		c.Teams = append(c.Teams, domain.TeamMember{Handle: m.Name, Team: m.Team, Profile: m.URL})
	}
	return c
}

// Validate reports duplicate item names within each page. Repos count towards the
// root page too, since a root search lists them.
func (c Catalog) Validate() error {
	root := append(append(append([]domain.Item{}, c.Links...), c.Commands...), c.Repos...)
	return errors.Join(
		domain.ValidateUnique(domain.PageRoot, root),
		domain.ValidateUnique(domain.PagePullRequest, c.Repos),
		domain.ValidateUnique(domain.PageTeams, c.Teams),
	)
}

// fetchedSet splits fetched items by the page they belong to
type fetchedSet struct {
	suggestions []domain.Item
	repos       []domain.Item
	members     []domain.Item
}

func splitFetched(items []domain.Item) fetchedSet {
	var f fetchedSet
	for _, item := range items {
		switch item.Kind() {
		case domain.KindRepoAction:
			f.repos = append(f.repos, item)
		case domain.KindTeamMember:
			f.members = append(f.members, item)
		default:
			f.suggestions = append(f.suggestions, item)
		}
	}
	return f
}

// groups returns the unfiltered groups of page. On the root page a non-empty query
// also searches the pull-request targets.
func (c Catalog) groups(page domain.Page, fetched fetchedSet, searching bool) []domain.Group {
	switch page {
	case domain.PageRoot:
		root := append(append([]domain.Item{}, c.Links...), c.Commands...)
		suggestions := append(uniqueAgainst(fetched.suggestions, root), c.Links...)
		groups := []domain.Group{
			{Heading: HeadingSuggestions, Items: suggestions},
			{Heading: HeadingCommands, Items: c.Commands},
		}
		if searching {
			// root items win over repos sharing their name
			shown := append(append([]domain.Item{}, suggestions...), c.Commands...)
			groups = append(groups, domain.Group{Heading: HeadingPullRequest, Items: uniqueAgainst(c.repoItems(fetched), shown)})
		}
		return groups
	case domain.PagePullRequest:
		return []domain.Group{{Heading: HeadingPullRequest, Items: c.repoItems(fetched)}}
	case domain.PageTeams:
		return []domain.Group{{Heading: HeadingTeams, Items: append(append([]domain.Item{}, c.Teams...), uniqueAgainst(fetched.members, c.Teams)...)}}
	default:
		log.Printf("Unknown palette page %q", page)
		return nil
	}
}

func (c Catalog) repoItems(fetched fetchedSet) []domain.Item {
	return append(append([]domain.Item{}, c.Repos...), uniqueAgainst(fetched.repos, c.Repos)...)
}

// uniqueAgainst drops items whose name is already taken, keeping names unique per page
func uniqueAgainst(items, existing []domain.Item) []domain.Item {
	taken := make(map[string]bool, len(existing)+len(items))
	for _, e := range existing {
		taken[e.Name()] = true
	}
	var out []domain.Item
	for _, item := range items {
		if taken[item.Name()] {
			log.Printf("Dropping duplicate palette item %q", item.Name())
			continue
		}
		taken[item.Name()] = true
		out = append(out, item)
	}
	return out
}
