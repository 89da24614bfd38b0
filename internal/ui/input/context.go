package input

import "cmdboard/internal/ui/palette"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Palette *palette.Controller
	Links   int
}

// PaletteOpen reports whether the palette is mounted
func (c *ModelContext) PaletteOpen() bool {
	return c.Palette != nil && c.Palette.IsOpen()
}

// Query returns the palette search text
func (c *ModelContext) Query() string {
	if c.Palette == nil {
		return ""
	}
	return c.Palette.Query()
}

// ItemCount returns the number of visible palette items
func (c *ModelContext) ItemCount() int {
	if c.Palette == nil {
		return 0
	}
	return len(c.Palette.Items())
}

// LinkCount returns the number of dashboard links
func (c *ModelContext) LinkCount() int {
	return c.Links
}
