// Package source reads protocol descriptions into message descriptors.
//
// Ownership boundary:
// - fetching the description from a URL or a local file
// - decoding the protocol XML in document order
//
// Source does not interpret names or types; that belongs to protocol/synth.
package source
