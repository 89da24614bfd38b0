package discovery

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxDepth bounds how far below a root a clone may live
const DefaultMaxDepth = 5

// skipDirs are never descended into
var skipDirs = map[string]bool{
	"node_modules":  true,
	"vendor":        true,
	"dist":          true,
	"build":         true,
	"target":        true,
	"__pycache__":   true,
	"venv":          true,
	".venv":         true,
	".cache":        true,
	".gradle":       true,
	".tox":          true,
	".pytest_cache": true,
}

// FindRepos walks roots and returns the working tree of every git clone found,
// sorted and without duplicates. Unreadable directories are logged and skipped.
func FindRepos(ctx context.Context, roots []string, maxDepth int) ([]string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	found := make(map[string]bool)
	for _, root := range roots {
		if err := scanDirectory(ctx, root, maxDepth, found); err != nil {
			return nil, err
		}
	}

	repos := make([]string, 0, len(found))
	for path := range found {
		repos = append(repos, path)
	}
	sort.Strings(repos)
	return repos, nil
}

func scanDirectory(ctx context.Context, root string, maxDepth int, found map[string]bool) error {
	root = filepath.Clean(root)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if !d.IsDir() {
			// worktrees and submodules carry a .git file
			if name == ".git" {
				found[filepath.Dir(path)] = true
			}
			return nil
		}

		if name == ".git" {
			found[filepath.Dir(path)] = true
			return filepath.SkipDir
		}
		if path == root {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if strings.Count(relPath, string(filepath.Separator)) >= maxDepth {
			return filepath.SkipDir
		}
		if skipDirs[name] || strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return nil
	})

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		log.Printf("Error scanning directory %s: %v", root, err)
	}
	return nil
}
