package domain

// ConfigurationDiff represents the changes between two configurations.
// It is designed to be serialized to JSON for compact step traces.
type ConfigurationDiff struct {
	Step int `json:"step"`

	Head   *int     `json:"head,omitempty"`
	State  *StateID `json:"state,omitempty"`
	Status *Status  `json:"status,omitempty"`

	// Tape contains only written cells whose symbol changed or appeared.
	Tape map[int]Symbol `json:"tape,omitempty"`
}

// Diff calculates the difference between oldCfg and newCfg.
// If oldCfg is nil, it returns a diff representing the entire newCfg (initial load).
// It returns nil when nothing changed.
func Diff(oldCfg, newCfg *Configuration) *ConfigurationDiff {
	if newCfg == nil {
		return nil
	}

	diff := &ConfigurationDiff{Step: newCfg.Steps}

	if oldCfg == nil || oldCfg.Head != newCfg.Head {
		diff.Head = &newCfg.Head
	}
	if oldCfg == nil || oldCfg.State != newCfg.State {
		diff.State = &newCfg.State
	}
	if oldCfg == nil || oldCfg.Status != newCfg.Status {
		diff.Status = &newCfg.Status
	}
	diff.Tape = diffTape(oldCfg, newCfg)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffTape(old, new *Configuration) map[int]Symbol {
	delta := make(map[int]Symbol)

	if old == nil {
		for pos, sym := range new.Tape {
			delta[pos] = sym
		}
	} else {
		for pos, sym := range new.Tape {
			if prev, ok := old.Tape[pos]; !ok || prev != sym {
				delta[pos] = sym
			}
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *ConfigurationDiff) IsEmpty() bool {
	return d.Head == nil &&
		d.State == nil &&
		d.Status == nil &&
		len(d.Tape) == 0
}
