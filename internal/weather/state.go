package weather

// Phase is the tag of the widget state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseSuccess:
		return "success"
	default:
		return "idle"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is what the presentation layer renders. Snapshot is the last
// successful result and survives Loading and Error phases; Message is only
// set in PhaseError.
type State struct {
	Phase    Phase            `json:"phase"`
	City     string           `json:"city,omitempty"`
	Message  string           `json:"error,omitempty"`
	Snapshot *WeatherSnapshot `json:"weather,omitempty"`
}

func (s State) Loading() bool { return s.Phase == PhaseLoading }

// Err returns the user-facing error message, "" outside PhaseError.
func (s State) Err() string {
	if s.Phase != PhaseError {
		return ""
	}
	return s.Message
}

// Gradient is the background for the current snapshot, if any.
func (s State) Gradient() Gradient {
	return GradientForSnapshot(s.Snapshot)
}

// Event drives Reduce.
type Event interface {
	isEvent()
}

// InputRejected is raised for a blank city; no request is made.
type InputRejected struct{}

// LookupStarted is raised before the provider is called.
type LookupStarted struct {
	City string
}

// LookupSucceeded carries the new snapshot.
type LookupSucceeded struct {
	Snapshot WeatherSnapshot
}

// LookupFailed is raised for any provider failure.
type LookupFailed struct {
	Err error
}

func (InputRejected) isEvent()   {}
func (LookupStarted) isEvent()   {}
func (LookupSucceeded) isEvent() {}
func (LookupFailed) isEvent()    {}

// Reduce returns the state that follows s after e. It never mutates s.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case InputRejected:
		return State{
			Phase:    PhaseError,
			City:     s.City,
			Message:  MsgEmptyInput,
			Snapshot: s.Snapshot,
		}
	case LookupStarted:
		return State{
			Phase:    PhaseLoading,
			City:     ev.City,
			Snapshot: s.Snapshot,
		}
	case LookupSucceeded:
		snap := ev.Snapshot
		return State{
			Phase:    PhaseSuccess,
			City:     s.City,
			Snapshot: &snap,
		}
	case LookupFailed:
		return State{
			Phase:    PhaseError,
			City:     s.City,
			Message:  MsgLookupFailed,
			Snapshot: s.Snapshot,
		}
	default:
		return s
	}
}
