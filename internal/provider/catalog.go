package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cmdboard/internal/domain"
)

// maxCatalogBytes caps a catalog document
const maxCatalogBytes = 4 << 20

// Category is one block of the apps catalog
type Category struct {
	Name string `yaml:"category" json:"category"`
	Apps []App  `yaml:"apps" json:"apps"`
}

// App is one catalog entry
type App struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
	Img  string `yaml:"img" json:"img"`
}

// Format of a catalog document
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// DecodeCatalog reads a catalog document and flattens its categories into suggestions
func DecodeCatalog(r io.Reader, format Format) ([]domain.Item, error) {
	var categories []Category
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&categories); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
	default:
		if err := yaml.NewDecoder(r).Decode(&categories); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
	}

	var items []domain.Item
	for _, cat := range categories {
		for _, app := range cat.Apps {
			name := strings.TrimSpace(app.Name)
			if name == "" {
				continue
			}
			items = append(items, domain.Suggestion{
				Title:    name,
				Link:     strings.TrimSpace(app.URL),
				Icon:     app.Img,
				Category: cat.Name,
			})
		}
	}
	return items, nil
}

// CatalogFile reads the catalog from a YAML or JSON file
type CatalogFile struct {
	Path string
}

func (c CatalogFile) Name() string { return "catalog:" + filepath.Base(c.Path) }

func (c CatalogFile) FetchItems(ctx context.Context) ([]domain.Item, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, &domain.FetchError{Source: c.Name(), Err: err}
	}
	defer f.Close()

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(c.Path), ".json") {
		format = FormatJSON
	}
	items, err := DecodeCatalog(io.LimitReader(f, maxCatalogBytes), format)
	if err != nil {
		return nil, &domain.FetchError{Source: c.Name(), Err: err}
	}
	return items, nil
}

// CatalogHTTP fetches the catalog document with a single GET
type CatalogHTTP struct {
	URL    string
	Client *http.Client
}

func (c CatalogHTTP) Name() string { return "catalog:" + c.URL }

func (c CatalogHTTP) FetchItems(ctx context.Context) ([]domain.Item, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, &domain.FetchError{Source: c.Name(), Err: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Source: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{Source: c.Name(), Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	format := FormatJSON
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && strings.Contains(mt, "yaml") {
		format = FormatYAML
	}
	items, err := DecodeCatalog(io.LimitReader(resp.Body, maxCatalogBytes), format)
	if err != nil {
		return nil, &domain.FetchError{Source: c.Name(), Err: err}
	}
	return items, nil
}
