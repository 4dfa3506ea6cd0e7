package align

import (
	"fmt"

	"numcompare/core/record"
)

// Pair couples the records found at one ordinal position of the two inputs.
// At least one side is always present; a nil side means that input was
// already exhausted at this position.
type Pair struct {
	// Index is the 0-based position the pair was aligned at.
	Index int
	// Left is the record from the left input, or nil.
	Left *record.Record
	// Right is the record from the right input, or nil.
	Right *record.Record
}

// Walker produces the positional pairing of two record sources. It follows
// the same Scan/Pair/Err contract the sources themselves use.
type Walker struct {
	left  record.Source
	right record.Source

	leftDone  bool
	rightDone bool
	index     int

	pair Pair
	err  error
}

// NewWalker returns a Walker over the two sources. The sources are consumed
// as the walk advances and cannot be reused afterwards.
func NewWalker(left, right record.Source) *Walker {
	return &Walker{left: left, right: right}
}

// Scan advances to the next aligned pair. It returns false when both inputs
// are exhausted or a source failed; Err tells the two apart.
func (w *Walker) Scan() bool {
	if w.err != nil {
		return false
	}

	var l, r *record.Record
	if !w.leftDone {
		if w.left.Scan() {
			rec := w.left.Record()
			l = &rec
		} else {
			w.leftDone = true
			if err := w.left.Err(); err != nil {
				w.err = fmt.Errorf("left input: %w", err)
				return false
			}
		}
	}
	if !w.rightDone {
		if w.right.Scan() {
			rec := w.right.Record()
			r = &rec
		} else {
			w.rightDone = true
			if err := w.right.Err(); err != nil {
				w.err = fmt.Errorf("right input: %w", err)
				return false
			}
		}
	}
	if l == nil && r == nil {
		return false
	}

	w.pair = Pair{Index: w.index, Left: l, Right: r}
	w.index++
	return true
}

// Pair returns the pair produced by the most recent successful Scan.
func (w *Walker) Pair() Pair {
	return w.pair
}

// Err returns the first source error encountered, wrapped with the side it
// came from.
func (w *Walker) Err() error {
	return w.err
}
