package graph

import "github.com/aretw0/turing/pkg/domain"

// Recorder collects the states a run passes through, for use as a GraphOverlay.
// Attach its Hooks to an engine before Initialize.
type Recorder struct {
	visited []domain.StateID
	current domain.StateID
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Hooks returns lifecycle hooks feeding the recorder.
// A new Initialize discards what was recorded before.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInitialize: func(e *domain.InitializeEvent) {
			r.visited = []domain.StateID{e.State}
			r.current = e.State
		},
		OnStep: func(e *domain.StepEvent) {
			r.visited = append(r.visited, e.Action.Next)
			r.current = e.Action.Next
		},
	}
}

// Overlay returns the visited states in order and the latest state.
func (r *Recorder) Overlay() *GraphOverlay {
	return &GraphOverlay{
		VisitedStates: append([]domain.StateID(nil), r.visited...),
		CurrentState:  r.current,
	}
}
