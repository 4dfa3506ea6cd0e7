// Package compare classifies aligned record pairs and aggregates the
// verdict of a comparison run.
//
// Run drains an alignment walker in a single sequential pass. Every pair is
// classified as a match, a mismatch, or a record missing from one side, and
// the counts are accumulated into a Verdict. An optional sink receives each
// classified pair in stream order, which is how the report builder observes
// the run without the comparator buffering anything.
//
// A run either produces a complete verdict over all pairs or fails with the
// underlying source error; there are no partial verdicts.
package compare
