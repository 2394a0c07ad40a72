package protocol

import (
	"strconv"
	"strings"
)

// MessageDescriptor is one message as declared by the protocol description.
type MessageDescriptor struct {
	Name   string
	ID     MessageID
	Online bool
	Fields []FieldDescriptor
}

// FieldDescriptor is one declared field, in wire order.
type FieldDescriptor struct {
	Name string
	Type string
}

// MessageID is a message identifier as written in the source ("0x01", "12").
// Two ids are equal when their numeric values are equal; ids that do not
// parse as numbers compare by trimmed text.
type MessageID struct {
	raw string
}

// ParseMessageID wraps a raw identifier.
func ParseMessageID(raw string) MessageID {
	return MessageID{raw: strings.TrimSpace(raw)}
}

// NewMessageID builds an identifier from an integer value.
func NewMessageID(v uint64) MessageID {
	return MessageID{raw: strconv.FormatUint(v, 10)}
}

// String returns the identifier as written.
func (id MessageID) String() string {
	return id.raw
}

// Value returns the numeric value of the identifier.
func (id MessageID) Value() (uint64, bool) {
	if id.raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(id.raw, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Key returns the comparison key. Numeric ids share a key space regardless of
// base, so "0x0a" and "10" collide. Non-numeric ids live in a separate space.
func (id MessageID) Key() string {
	if v, ok := id.Value(); ok {
		return "#" + strconv.FormatUint(v, 10)
	}
	return "$" + id.raw
}

// Equal reports whether both ids denote the same message number.
func (id MessageID) Equal(other MessageID) bool {
	return id.Key() == other.Key()
}
