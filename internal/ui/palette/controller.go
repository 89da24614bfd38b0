package palette

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"cmdboard/internal/domain"
	"cmdboard/internal/eventbus"
	"cmdboard/internal/opener"
	"cmdboard/internal/ui/logic"
	"cmdboard/internal/ui/services/events"
	"cmdboard/internal/ui/services/navigation"
	"cmdboard/internal/ui/services/search"
	"cmdboard/internal/ui/services/selection"
)

// State is the palette lifecycle state
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Options configures a Controller
type Options struct {
	Catalog Catalog
	Match   logic.MatchOptions
	Wrap    bool
	Opener  opener.Opener
	OnClose func()            // invoked on every open to closed transition
	Bus     eventbus.EventBus // optional domain bus for lifecycle events
	NewID   func() string     // mount id generator, uuid by default
}

// mount is everything that lives between open and close
type mount struct {
	id        string
	session   domain.Session
	bus       *events.Bus
	nav       *navigation.Service
	search    *search.Service
	selection *selection.Service
	fetched   fetchedSet
	loading   bool
	view      []domain.Group
}

// Controller is the palette state machine. It is driven from a single goroutine,
// the bubbletea update loop, and performs no I/O apart from the opener.
type Controller struct {
	opts  Options
	state State
	m     *mount
}

// NewController creates a closed palette
func NewController(opts Options) *Controller {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Opener == nil {
		opts.Opener = opener.NewBrowser("")
	}
	return &Controller{opts: opts}
}

// Open mounts the palette on the root page. Opening requires a signed-in session;
// opening an open palette returns the current mount id.
func (c *Controller) Open(session domain.Session) (string, error) {
	if !session.Valid() {
		return "", domain.ErrNoSession
	}
	if c.state == StateOpen {
		return c.m.id, nil
	}

	bus := events.NewBus()
	m := &mount{
		id:        c.opts.NewID(),
		session:   session,
		bus:       bus,
		nav:       navigation.NewService(bus),
		search:    search.NewService(bus, c.opts.Match),
		selection: selection.NewService(bus, c.opts.Wrap),
		loading:   true,
	}
	c.m = m
	c.state = StateOpen
	c.subscribeToEvents(m)
	c.refresh()

	log.Printf("Palette opened (mount %s, user %s)", m.id, session.User)
	c.publish(eventbus.PaletteOpenedEvent{MountID: m.id, User: session.User})
	return m.id, nil
}

// Toggle opens a closed palette and closes an open one
func (c *Controller) Toggle(session domain.Session) error {
	if c.state == StateOpen {
		c.Close()
		return nil
	}
	_, err := c.Open(session)
	return err
}

// Close discards the mount and invokes the close callback. Closing a closed palette is a no-op.
func (c *Controller) Close() {
	if c.state == StateClosed {
		return
	}
	id := c.m.id
	c.m.nav.Reset()
	c.m = nil
	c.state = StateClosed

	log.Printf("Palette closed (mount %s)", id)
	c.publish(eventbus.PaletteClosedEvent{MountID: id})
	if c.opts.OnClose != nil {
		c.opts.OnClose()
	}
}

// Escape pops a sub-page, or closes the palette on the root page
func (c *Controller) Escape() {
	if c.state == StateClosed {
		return
	}
	if !c.m.nav.Pop() {
		c.Close()
	}
}

// Backspace pops a sub-page when the query is empty. It returns false when the key
// should edit the query instead.
func (c *Controller) Backspace() bool {
	if c.state == StateClosed {
		return false
	}
	if !c.m.search.IsEmpty() {
		return false
	}
	c.m.nav.Pop()
	return true
}

// SetQuery replaces the search text
func (c *Controller) SetQuery(query string) {
	if c.state == StateClosed {
		return
	}
	c.m.search.SetQuery(query)
}

// MoveNext highlights the following item
func (c *Controller) MoveNext() {
	if c.state == StateOpen {
		c.m.selection.MoveNext()
	}
}

// MovePrevious highlights the preceding item
func (c *Controller) MovePrevious() {
	if c.state == StateOpen {
		c.m.selection.MovePrevious()
	}
}

// Highlight moves the cursor to the visible item named name
func (c *Controller) Highlight(name string) bool {
	if c.state == StateClosed {
		return false
	}
	return c.m.selection.Select(name)
}

// Apply performs an effect. Opening a URL does not close the palette; Select does that.
func (c *Controller) Apply(effect Effect) error {
	if c.state == StateClosed {
		return nil
	}
	switch e := effect.(type) {
	case EffectOpenURL:
		err := c.opts.Opener.Open(e.URL, e.Target)
		c.publish(eventbus.URLOpenedEvent{URL: e.URL, Target: e.Target, Err: err})
		if err != nil {
			log.Printf("Failed to open %s: %v", e.URL, err)
			return err
		}
		log.Printf("Opened %s", e.URL)
	case EffectPush:
		c.m.nav.Push(e.Page)
	}
	return nil
}

// Select resolves item and applies the effect. A URL that opened closes the palette;
// an opener failure leaves it open.
func (c *Controller) Select(item domain.Item) error {
	effect := Resolve(item)
	if err := c.Apply(effect); err != nil {
		return err
	}
	if _, ok := effect.(EffectOpenURL); ok {
		c.Close()
	}
	return nil
}

// Activate selects the highlighted item, failing with ErrNoSelection on an empty view
func (c *Controller) Activate() error {
	if c.state == StateClosed {
		return domain.ErrNoSelection
	}
	item, err := c.m.selection.Activate()
	if err != nil {
		return err
	}
	return c.Select(item)
}

// ApplyItems merges the mount-time fetch result. Results for a mount that is no longer
// current are discarded and false is returned. A failed fetch leaves the fetched set empty.
func (c *Controller) ApplyItems(mountID string, items []domain.Item, err error) bool {
	if c.state == StateClosed || c.m.id != mountID {
		log.Printf("Discarding stale fetch result for mount %s", mountID)
		return false
	}

	c.m.loading = false
	if err != nil {
		if !errors.Is(err, domain.ErrFetchFailure) {
			err = &domain.FetchError{Source: "palette", Err: err}
		}
		log.Printf("Palette fetch failed: %v", err)
		c.m.fetched = fetchedSet{}
		c.publish(eventbus.FetchFailedEvent{MountID: mountID, Err: err})
	} else {
		c.m.fetched = splitFetched(items)
		c.publish(eventbus.ItemsFetchedEvent{MountID: mountID, Count: len(items)})
	}

	c.refresh()
	return true
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the palette is mounted
func (c *Controller) IsOpen() bool {
	return c.state == StateOpen
}

// MountID returns the current mount id, empty when closed
func (c *Controller) MountID() string {
	if c.state == StateClosed {
		return ""
	}
	return c.m.id
}

// Query returns the search text
func (c *Controller) Query() string {
	if c.state == StateClosed {
		return ""
	}
	return c.m.search.Query()
}

// Page returns the current page
func (c *Controller) Page() domain.Page {
	if c.state == StateClosed {
		return domain.PageRoot
	}
	return c.m.nav.Current()
}

// Pages returns the navigation stack, bottom first
func (c *Controller) Pages() []domain.Page {
	if c.state == StateClosed {
		return nil
	}
	return c.m.nav.Pages()
}

// Groups returns the filtered view
func (c *Controller) Groups() []domain.Group {
	if c.state == StateClosed {
		return nil
	}
	return c.m.view
}

// Items returns the filtered view flattened in display order
func (c *Controller) Items() []domain.Item {
	return domain.Flatten(c.Groups())
}

// Selected returns the highlighted item
func (c *Controller) Selected() (domain.Item, bool) {
	if c.state == StateClosed {
		return nil, false
	}
	return c.m.selection.Selected()
}

// Loading reports whether the mount-time fetch is still outstanding
func (c *Controller) Loading() bool {
	return c.state == StateOpen && c.m.loading
}

// Hint suggests a close item name when the query matches nothing on the current page
func (c *Controller) Hint() (string, bool) {
	if c.state == StateClosed || len(c.m.view) > 0 {
		return "", false
	}
	return c.m.search.Hint(c.unfiltered())
}

// Catalog returns the static content
func (c *Controller) Catalog() Catalog {
	return c.opts.Catalog
}

// SetCatalog replaces the static content, refreshing an open palette
func (c *Controller) SetCatalog(catalog Catalog) {
	c.opts.Catalog = catalog
	if c.state == StateOpen {
		c.refresh()
	}
}

// subscribeToEvents keeps the view in step with the mount's services
func (c *Controller) subscribeToEvents(m *mount) {
	m.bus.Subscribe(events.TypeOf(navigation.PageChangedEvent{}), func(e interface{}) {
		ev := e.(navigation.PageChangedEvent)
		log.Printf("Palette page %q -> %q (depth %d)", ev.From, ev.To, ev.Depth)
		m.selection.Reset()
		if !m.search.IsEmpty() {
			m.search.Clear()
			return
		}
		c.refresh()
	})

	m.bus.Subscribe(events.TypeOf(search.QueryChangedEvent{}), func(e interface{}) {
		c.refresh()
	})

	m.bus.Subscribe(events.TypeOf(search.QueryClearedEvent{}), func(e interface{}) {
		c.refresh()
	})
}

func (c *Controller) unfiltered() []domain.Group {
	return c.opts.Catalog.groups(c.m.nav.Current(), c.m.fetched, !c.m.search.IsEmpty())
}

// refresh recomputes the filtered view and realigns the cursor
func (c *Controller) refresh() {
	if c.state == StateClosed {
		return
	}
	c.m.view = c.m.search.View(c.unfiltered())
	c.m.selection.OnViewChanged(domain.Flatten(c.m.view))
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.opts.Bus != nil {
		c.opts.Bus.Publish(event)
	}
}
