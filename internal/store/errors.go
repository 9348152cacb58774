package store

import "fmt"

// ConnectionError means the underlying storage is unavailable or the call to
// it failed. Absence of a document is never a ConnectionError: reads report
// absence as a nil result.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store: %s: storage unavailable: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SchemaError means the caller violated the collection contract: an unknown
// collection name, or a document missing the value of its declared key field.
// It indicates a programming defect, not a user-facing condition.
type SchemaError struct {
	Collection string
	Detail     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("store: collection %q: %s", e.Collection, e.Detail)
}
