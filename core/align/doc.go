// Package align pairs two record streams by ordinal position.
//
// Record i of the left input is paired with record i of the right input.
// When one stream runs out, the remaining records of the other are emitted
// as one-sided pairs, so every record from both inputs appears in exactly
// one pair. There is no resynchronization: an insertion shifts all later
// pairings, which is the intended behavior for fixed-layout data.
//
// The walk is strictly sequential and holds only the current pair in
// memory, so input size does not affect the footprint.
package align
