package search

// State holds search state
type State struct {
	Query string
}

// Event types
type QueryChangedEvent struct {
	Old string
	New string
}

type QueryClearedEvent struct{}
