package analysis

// Validation failure reasons.
const (
	ReasonPrefixMismatch       = "prefix_mismatch"
	ReasonUnsupportedExtension = "unsupported_extension"
)

// ValidationError marks an event the pipeline skips without calling the
// classifier or the store. It never escapes the per-event unit as fatal.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input " + e.Key + ": " + e.Reason
}

// ClassificationError wraps a label-detection failure. Fatal: the batch
// aborts at the first one, no retry.
type ClassificationError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ClassificationError) Error() string {
	if e.Err == nil {
		return "classification failed"
	}
	return "classification failed: " + e.Err.Error()
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// PersistenceError wraps a store-write failure. Fatal, no retry.
type PersistenceError struct {
	Filename string
	Err      error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return "persistence failed"
	}
	return "persistence failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
