package generation

// State is a step of the generation workflow.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRecordingInput
	StateRequestingContent
	StateRecordingOutputs
	StateDisplaying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRecordingInput:
		return "recording_input"
	case StateRequestingContent:
		return "requesting_content"
	case StateRecordingOutputs:
		return "recording_outputs"
	case StateDisplaying:
		return "displaying"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
