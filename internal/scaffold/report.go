package scaffold

// Outcome is the terminal state of a single entry after an apply.
// Every entry moves from pending to exactly one outcome; there are no
// retries inside the engine.
type Outcome int

const (
	// OutcomeCreated indicates the entry was newly materialized.
	OutcomeCreated Outcome = iota
	// OutcomeSkipped indicates the target already existed and was left alone.
	OutcomeSkipped
	// OutcomeOverwritten indicates an existing file's content was replaced.
	OutcomeOverwritten
	// OutcomeFailed indicates the entry could not be applied.
	OutcomeFailed
)

// String returns the outcome name for report output.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeOverwritten:
		return "overwritten"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one entry.
type Result struct {
	// Path is the entry's relative path as declared.
	Path string
	// Kind is the declared entry kind.
	Kind Kind
	// Outcome is the terminal state of the entry.
	Outcome Outcome
	// Err holds the failure reason when Outcome is OutcomeFailed.
	Err error
}

// Report is the ordered per-entry outcome list of one Apply call,
// in declaration order.
type Report []Result

// HasFailures reports whether any entry failed.
func (r Report) HasFailures() bool {
	for _, res := range r {
		if res.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}

// Counts returns the number of created, skipped, overwritten and failed
// entries.
func (r Report) Counts() (created, skipped, overwritten, failed int) {
	for _, res := range r {
		switch res.Outcome {
		case OutcomeCreated:
			created++
		case OutcomeSkipped:
			skipped++
		case OutcomeOverwritten:
			overwritten++
		case OutcomeFailed:
			failed++
		}
	}
	return created, skipped, overwritten, failed
}

// Failed returns the results of failed entries, in declaration order.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
