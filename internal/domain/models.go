package domain

import (
	"net/url"
	"strings"
)

// Kind identifies which variant an Item is
type Kind int

const (
	KindSuggestion Kind = iota
	KindCommand
	KindRepoAction
	KindTeamMember
)

func (k Kind) String() string {
	switch k {
	case KindSuggestion:
		return "suggestion"
	case KindCommand:
		return "command"
	case KindRepoAction:
		return "repo-action"
	case KindTeamMember:
		return "team-member"
	default:
		return "unknown"
	}
}

// Item is anything the palette can list, filter and select.
// Name is both the display label and the search key and must be unique within a page.
type Item interface {
	Name() string
	URL() string // empty for commands that do not navigate away
	Kind() Kind
	Detail() string
}

// Page is a named palette sub-view
type Page string

const (
	PageRoot        Page = "" // empty navigation stack
	PagePullRequest Page = "pull-request"
	PageTeams       Page = "teams"
)

// Suggestion is a curated or fetched link (app, site)
type Suggestion struct {
	Title    string
	Link     string
	Icon     string // opaque, not rendered
	Category string
}

func (s Suggestion) Name() string { return s.Title }
func (s Suggestion) URL() string { return s.Link }
func (s Suggestion) Kind() Kind { return KindSuggestion }
func (s Suggestion) Detail() string {
	if s.Category != "" {
		return s.Category
	}
	return hostOf(s.Link)
}

// Command either opens a URL or pushes a sub-page
type Command struct {
	Title  string
	Link   string
	Target Page
	Meta   string
}

func (c Command) Name() string { return c.Title }
func (c Command) URL() string { return c.Link }
func (c Command) Kind() Kind { return KindCommand }
func (c Command) Detail() string {
	if c.Meta != "" {
		return c.Meta
	}
	if c.Target != PageRoot {
		return "→ " + string(c.Target)
	}
	return hostOf(c.Link)
}

// RepoTarget opens the "new pull request" page of a repository
type RepoTarget struct {
	Slug       string // owner/name
	CompareURL string
}

func (r RepoTarget) Name() string { return r.Slug }
func (r RepoTarget) URL() string { return r.CompareURL }
func (r RepoTarget) Kind() Kind { return KindRepoAction }
func (r RepoTarget) Detail() string { return "new pull request" }

// TeamMember is an entry on the teams page
type TeamMember struct {
	Handle  string
	Team    string
	Profile string
}

func (t TeamMember) Name() string { return t.Handle }
func (t TeamMember) URL() string { return t.Profile }
func (t TeamMember) Kind() Kind { return KindTeamMember }
func (t TeamMember) Detail() string { return t.Team }

// Group is a headed, ordered list of items
type Group struct {
	Heading string
	Items   []Item
}

// Session is the signed-in user context required to open the palette
type Session struct {
	User string
}

// Valid reports whether the session carries a user
func (s Session) Valid() bool {
	return strings.TrimSpace(s.User) != ""
}

// Names returns the item names in order
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name()
	}
	return names
}

// Flatten concatenates group items in order
func Flatten(groups []Group) []Item {
	var items []Item
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}

func hostOf(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	return u.Host
}
