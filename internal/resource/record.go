package resource

import "fmt"

// Record is a fetched entity, immutable once constructed.
type Record interface {
	RecordID() int
	RecordName() string
}

// Header carries the identity shared by every record.
type Header struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (h Header) RecordID() int {
	return h.ID
}

func (h Header) RecordName() string {
	return h.Name
}

// MalformedPayloadError reports a mandatory payload field that was missing.
type MalformedPayloadError struct {
	Kind  Kind
	Field string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed %s payload: missing %s", e.Kind, e.Field)
}
