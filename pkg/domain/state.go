package domain

// Status is the engine's own two-state lifecycle, distinct from the machine's StateID.
type Status string

const (
	StatusRunning Status = "running" // Initialized, transitions may still apply
	StatusHalted  Status = "halted"  // No transition matched, or never initialized
)

// Configuration is a read-only snapshot of an execution.
type Configuration struct {
	Head   int     `json:"head"`
	State  StateID `json:"state"`
	Status Status  `json:"status"`

	// Steps counts the transitions applied since the last initialization.
	Steps int `json:"steps"`

	// Tape holds a copy of every written cell. Unlisted positions are blank.
	Tape map[int]Symbol `json:"tape"`
}

// Halted reports whether the snapshot was taken after the machine halted.
func (c *Configuration) Halted() bool {
	return c.Status == StatusHalted
}
