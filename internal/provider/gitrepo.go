package provider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"cmdboard/internal/discovery"
	"cmdboard/internal/domain"
)

// GitRepos turns local clones into pull-request targets using their origin remote.
// Roots are scanned for clones in addition to the explicit Paths.
type GitRepos struct {
	Paths    []string
	Roots    []string
	MaxDepth int
	Remote   string // defaults to origin
}

func (g GitRepos) Name() string { return "git-repos" }

func (g GitRepos) FetchItems(ctx context.Context) ([]domain.Item, error) {
	remote := g.Remote
	if remote == "" {
		remote = git.DefaultRemoteName
	}

	paths, err := g.repoPaths(ctx)
	if err != nil {
		return nil, &domain.FetchError{Source: g.Name(), Err: err}
	}

	var items []domain.Item
	var failed []error
	seen := make(map[string]bool)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, &domain.FetchError{Source: g.Name(), Err: err}
		}
		target, err := repoTarget(path, remote)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			failed = append(failed, err)
			continue
		}
		if seen[target.Slug] {
			continue
		}
		seen[target.Slug] = true
		items = append(items, target)
	}

	if len(paths) > 0 && len(failed) == len(paths) {
		return nil, &domain.FetchError{Source: g.Name(), Err: errors.Join(failed...)}
	}
	return items, nil
}

func (g GitRepos) repoPaths(ctx context.Context) ([]string, error) {
	if len(g.Roots) == 0 {
		return g.Paths, nil
	}
	found, err := discovery.FindRepos(ctx, g.Roots, g.MaxDepth)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d clones under %v", len(found), g.Roots)
	return append(append([]string{}, g.Paths...), found...), nil
}

func repoTarget(path, remoteName string) (domain.RepoTarget, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.RepoTarget{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return domain.RepoTarget{}, fmt.Errorf("remote %s: %w", remoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return domain.RepoTarget{}, fmt.Errorf("remote %s has no url", remoteName)
	}
	host, slug, err := ParseRemoteURL(urls[0])
	if err != nil {
		return domain.RepoTarget{}, err
	}
	return domain.RepoTarget{Slug: slug, CompareURL: CompareURL(host, slug)}, nil
}

// ParseRemoteURL extracts host and owner/name from https, ssh and scp-style remotes
func ParseRemoteURL(raw string) (host, slug string, err error) {
	raw = strings.TrimSpace(raw)
	var path string

	switch {
	case strings.Contains(raw, "://"):
		u, perr := url.Parse(raw)
		if perr != nil {
			return "", "", fmt.Errorf("parse remote %q: %w", raw, perr)
		}
		host, path = u.Hostname(), u.Path
	case strings.Contains(raw, ":"):
		// git@github.com:owner/repo.git
		at := strings.LastIndex(raw[:strings.Index(raw, ":")], "@")
		host = raw[at+1 : strings.Index(raw, ":")]
		path = raw[strings.Index(raw, ":")+1:]
	default:
		return "", "", fmt.Errorf("unsupported remote %q", raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if host == "" || len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("remote %q has no owner/name", raw)
	}
	return host, parts[len(parts)-2] + "/" + parts[len(parts)-1], nil
}

// CompareURL builds the "open a pull request" page for a repository
func CompareURL(host, slug string) string {
	if host == "" {
		host = "github.com"
	}
	return "https://" + host + "/" + slug + "/compare"
}
