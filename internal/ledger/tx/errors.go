package tx

import "fmt"

// MalformedRecordError reports a record that failed construction: a
// required field was absent or a present field could not be coerced to its
// declared type. No partially-valid record is produced.
type MalformedRecordError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: field %s: %s", e.Kind, e.Field, e.Reason)
}

// MissingFieldError reports an accessor invoked for a field the record does
// not carry, typically a sign the caller dispatched on the wrong kind. It
// is a logic defect in the caller, not a runtime condition to recover from.
type MissingFieldError struct {
	Kind  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record has no field %s", e.Kind, e.Field)
}
