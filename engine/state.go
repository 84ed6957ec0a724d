package engine

// State is the lifecycle state of the engine.
type State int

const (
	// StateInitializing covers collaborator acquisition inside NewEngine.
	StateInitializing State = iota
	// StateRunning is the per-frame loop.
	StateRunning
	// StateTerminating is entered on window close, Escape, Quit or a fatal error.
	// No further frames are rendered.
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}
