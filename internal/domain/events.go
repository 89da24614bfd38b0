package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventPaletteOpened EventType = "PaletteOpened"
	EventPaletteClosed EventType = "PaletteClosed"
	EventItemsFetched  EventType = "ItemsFetched"
	EventFetchFailed   EventType = "FetchFailed"
	EventURLOpened     EventType = "URLOpened"
	EventAppReady      EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	User string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// PaletteOpenedEvent is emitted when the palette mounts
type PaletteOpenedEvent struct {
	MountID string
	User    string
}

func (e PaletteOpenedEvent) Type() EventType { return EventPaletteOpened }

// PaletteClosedEvent is emitted when the palette unmounts
type PaletteClosedEvent struct {
	MountID string
}

func (e PaletteClosedEvent) Type() EventType { return EventPaletteClosed }

// ItemsFetchedEvent is emitted when the mount-time fetch succeeds
type ItemsFetchedEvent struct {
	MountID string
	Count   int
}

func (e ItemsFetchedEvent) Type() EventType { return EventItemsFetched }

// FetchFailedEvent is emitted when the mount-time fetch fails
type FetchFailedEvent struct {
	MountID string
	Err     error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// URLOpenedEvent is emitted after a URL was handed to the opener
type URLOpenedEvent struct {
	URL    string
	Target string
	Err    error
}

func (e URLOpenedEvent) Type() EventType { return EventURLOpened }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
