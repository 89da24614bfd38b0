package provider

import (
	"context"
	"errors"
	"log"
	"sync"

	"cmdboard/internal/domain"
)

// Provider supplies palette items. FetchItems is called once per palette mount.
type Provider interface {
	Name() string
	FetchItems(ctx context.Context) ([]domain.Item, error)
}

// Static returns a fixed item list
type Static struct {
	Label string
	Items []domain.Item
	Err   error
}

func (s Static) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

func (s Static) FetchItems(ctx context.Context) ([]domain.Item, error) {
	if s.Err != nil {
		return nil, &domain.FetchError{Source: s.Name(), Err: s.Err}
	}
	out := make([]domain.Item, len(s.Items))
	copy(out, s.Items)
	return out, nil
}

// Combined fans out to several providers and merges their results in provider order.
// A failing provider is logged and skipped; only a total failure is returned.
type Combined struct {
	providers []Provider
}

// NewCombined creates a combined provider
func NewCombined(providers ...Provider) *Combined {
	return &Combined{providers: providers}
}

func (c *Combined) Name() string { return "combined" }

// Len returns the number of wrapped providers
func (c *Combined) Len() int { return len(c.providers) }

func (c *Combined) FetchItems(ctx context.Context) ([]domain.Item, error) {
	if len(c.providers) == 0 {
		return nil, nil
	}

	results := make([][]domain.Item, len(c.providers))
	errs := make([]error, len(c.providers))

	var wg sync.WaitGroup
	for i, p := range c.providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			results[i], errs[i] = p.FetchItems(ctx)
		}(i, p)
	}
	wg.Wait()

	var items []domain.Item
	var failed []error
	for i, p := range c.providers {
		if errs[i] != nil {
			log.Printf("Provider %s failed: %v", p.Name(), errs[i])
			failed = append(failed, errs[i])
			continue
		}
		items = append(items, results[i]...)
	}

	if len(failed) == len(c.providers) {
		return nil, &domain.FetchError{Source: c.Name(), Err: errors.Join(failed...)}
	}
	return items, nil
}
