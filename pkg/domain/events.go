package domain

// EventType defines the category of the event.
type EventType string

const (
	EventInitialize EventType = "initialize"
	EventStep       EventType = "step"
	EventHalt       EventType = "halt"
)

// InitializeEvent is emitted after the execution state has been replaced.
type InitializeEvent struct {
	Type      EventType `json:"type"`
	State     StateID   `json:"state"`
	SeedCells int       `json:"seed_cells"`
}

// StepEvent describes one applied transition.
type StepEvent struct {
	Type     EventType `json:"type"`
	Step     int       `json:"step"`
	From     Key       `json:"from"`
	Action   Action    `json:"action"`
	HeadFrom int       `json:"head_from"`
	HeadTo   int       `json:"head_to"`
}

// HaltEvent is emitted once when no transition matches the current configuration.
type HaltEvent struct {
	Type      EventType `json:"type"`
	State     StateID   `json:"state"`
	Read      Symbol    `json:"read"`
	Head      int       `json:"head"`
	Steps     int       `json:"steps"`
	Accepting bool      `json:"accepting"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run after the mutation they describe and receive copies only.
type LifecycleHooks struct {
	OnInitialize func(*InitializeEvent)
	OnStep       func(*StepEvent)
	OnHalt       func(*HaltEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnInitialize: chain(h.OnInitialize, other.OnInitialize),
		OnStep:       chain(h.OnStep, other.OnStep),
		OnHalt:       chain(h.OnHalt, other.OnHalt),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
