package record

// Source is the minimal iteration contract over a record stream. Reader
// implements it for files; SliceSource adapts in-memory sequences for tests
// and small inputs.
type Source interface {
	// Scan advances to the next record and reports whether one is available.
	Scan() bool
	// Record returns the record produced by the most recent successful Scan.
	Record() Record
	// Err returns the first error encountered while scanning, if any.
	Err() error
}

// Sequence is an ordered, fully materialized list of records.
type Sequence []Record

// SliceSource returns a Source that yields the records of seq in order.
func SliceSource(seq Sequence) Source {
	return &sliceSource{seq: seq}
}

type sliceSource struct {
	seq Sequence
	i   int
	cur Record
}

func (s *sliceSource) Scan() bool {
	if s.i >= len(s.seq) {
		return false
	}
	s.cur = s.seq[s.i]
	s.i++
	return true
}

func (s *sliceSource) Record() Record {
	return s.cur
}

func (s *sliceSource) Err() error {
	return nil
}

// ReadAll drains src and returns the full sequence. Intended for small
// inputs and tests; the comparison pipeline itself stays record-at-a-time.
func ReadAll(src Source) (Sequence, error) {
	var seq Sequence
	for src.Scan() {
		seq = append(seq, src.Record())
	}
	return seq, src.Err()
}
