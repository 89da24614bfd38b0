package provider

import (
	"net/http"

	"cmdboard/internal/config"
)

// FromConfig builds the mount-time provider from the configured sources
func FromConfig(cfg *config.Config) *Combined {
	var providers []Provider
	if cfg.Catalog.File != "" {
		providers = append(providers, CatalogFile{Path: cfg.Catalog.File})
	}
	if cfg.Catalog.URL != "" {
		providers = append(providers, CatalogHTTP{
			URL:    cfg.Catalog.URL,
			Client: &http.Client{Timeout: cfg.FetchTimeout()},
		})
	}
	if len(cfg.RepoScan.Paths) > 0 || len(cfg.RepoScan.Roots) > 0 {
		providers = append(providers, GitRepos{
			Paths:    cfg.RepoScan.Paths,
			Roots:    cfg.RepoScan.Roots,
			MaxDepth: cfg.RepoScan.MaxDepth,
		})
	}
	return NewCombined(providers...)
}
