package model

// BatchMode distinguishes user additions from restoring persisted state.
type BatchMode int

const (
	// BatchAdd adds new inputs and persists the result.
	BatchAdd BatchMode = iota
	// BatchLoad replaces the selection with persisted references.
	BatchLoad
)

func (b BatchMode) String() string {
	if b == BatchLoad {
		return "load"
	}

	return "add"
}

// BatchFailure records one reference that could not be resolved.
type BatchFailure struct {
	Reference string
	Err       error
}

// BatchOutcome is the result of a batch's compute phase. Files holds the
// resolved inputs in input order.
type BatchOutcome struct {
	Panel    PanelID
	Mode     BatchMode
	Files    []ResolvedFile
	Failures []BatchFailure
	// Skipped lists inputs dropped before resolution, e.g. files outside
	// the project root.
	Skipped []string
	Err     error
}

// BatchSummary reports what applying a batch changed.
type BatchSummary struct {
	Panel      PanelID
	Mode       BatchMode
	Added      int
	Duplicates int
	Failures   []BatchFailure
	Skipped    []string
	Total      int
}

// Failed returns the number of inputs that failed to resolve.
func (s BatchSummary) Failed() int {
	return len(s.Failures)
}
