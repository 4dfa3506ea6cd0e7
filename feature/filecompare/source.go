package filecompare

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"numcompare/core/record"
)

// Input is an opened comparison input: a record stream plus the handles
// needed to release it. It implements record.Source by delegating to its
// reader.
type Input struct {
	name    string
	size    int64
	rd      *record.Reader
	closers []io.Closer
}

// OpenInput opens path as a record stream of the given format. The path
// "-" reads stdin, and files ending in .gz are decompressed on the fly.
func OpenInput(path string, format record.Format) (*Input, error) {
	if path == "-" {
		return &Input{name: "stdin", size: -1, rd: record.NewReader(os.Stdin, format)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	in := &Input{name: path, size: -1, closers: []io.Closer{f}}
	if fi, err := f.Stat(); err == nil {
		in.size = fi.Size()
	}

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		// The record stream is the uncompressed content, whose size is not
		// known up front.
		in.size = -1
		in.closers = append(in.closers, zr)
		r = zr
	}

	in.rd = record.NewReader(r, format)
	return in, nil
}

// Scan advances to the next record of the input.
func (in *Input) Scan() bool {
	return in.rd.Scan()
}

// Record returns the record produced by the most recent successful Scan.
func (in *Input) Record() record.Record {
	return in.rd.Record()
}

// Err returns the first read or parse error, if any.
func (in *Input) Err() error {
	return in.rd.Err()
}

// Name returns the display name used in reports.
func (in *Input) Name() string {
	return in.name
}

// Size returns the input size in bytes, or -1 when unknown.
func (in *Input) Size() int64 {
	return in.size
}

// Close releases the underlying handles, innermost first. Closing an Input
// opened on stdin is a no-op.
func (in *Input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
