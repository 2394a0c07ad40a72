// Package protocol owns the input contract of the converter.
//
// Ownership boundary:
// - message and field descriptors as read from a protocol description
// - message identifier comparison
// - schema document types live in protocol/schema
// - schema synthesis lives in protocol/synth
package protocol
