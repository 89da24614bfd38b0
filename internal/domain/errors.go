package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure marks a failed item fetch; wrap it with the provider cause
	ErrFetchFailure = errors.New("fetch failure")
	// ErrNoSelection is returned when activating an empty view
	ErrNoSelection = errors.New("no selection")
	// ErrDuplicateItemName is returned when two items on one page share a name
	ErrDuplicateItemName = errors.New("duplicate item name")
	// ErrNoSession is returned when the palette is opened without a user
	ErrNoSession = errors.New("no user session")
)

// FetchError wraps a provider error as a fetch failure
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailure, e.Err}
}

// ValidateUnique checks that item names are unique within one page
func ValidateUnique(page Page, items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		name := item.Name()
		if seen[name] {
			p := string(page)
			if page == PageRoot {
				p = "root"
			}
			return fmt.Errorf("%w: %q on page %s", ErrDuplicateItemName, name, p)
		}
		seen[name] = true
	}
	return nil
}
