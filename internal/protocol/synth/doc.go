// Package synth turns protocol message descriptors into a schema document.
//
// Ownership boundary:
// - message and field name normalization
// - source type coercion
// - hand-written field overrides
// - envelope and dispatch assembly
//
// Everything here is a pure function of its input. Fetching and parsing the
// protocol description, and writing the document, belong to the callers.
package synth
