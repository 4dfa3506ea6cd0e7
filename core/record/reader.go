package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. Lines beyond this abort the read
// with bufio.ErrTooLong instead of growing memory without limit.
const maxLineBytes = 1024 * 1024

// ParseError reports a token that could not be parsed under the active
// format. It is fatal: the reader stops at the first occurrence.
type ParseError struct {
	// Line is the 1-based line the token starts on.
	Line int
	// Column is the 1-based byte offset of the token on its line.
	Column int
	// Token is the offending token as read.
	Token string
	// Format is the format the token was parsed under.
	Format Format
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: cannot parse %q as a %s record", e.Line, e.Column, e.Token, e.Format)
}

// field is one token of the current line together with its start column.
type field struct {
	text string
	col  int
}

// Reader walks an input stream once and produces records lazily, in stream
// order. It follows the bufio.Scanner contract: call Scan until it returns
// false, then check Err. A Reader consumes its underlying stream and cannot
// be rewound; re-reading requires reopening the source.
type Reader struct {
	sc     *bufio.Scanner
	format Format

	line   int
	fields []field
	next   int
	index  int

	rec  Record
	err  error
	done bool
}

// NewReader returns a Reader that cuts r into records of the given format.
func NewReader(r io.Reader, format Format) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc, format: format}
}

// Scan advances the reader to the next record. It returns false when the
// input is exhausted or reading failed; Err tells the two apart.
func (r *Reader) Scan() bool {
	if r.err != nil || r.done {
		return false
	}
	for {
		if r.next < len(r.fields) {
			f := r.fields[r.next]
			r.next++
			rec, err := r.build(f)
			if err != nil {
				r.err = err
				return false
			}
			r.rec = rec
			r.index++
			return true
		}
		if !r.sc.Scan() {
			r.done = true
			r.err = r.sc.Err()
			return false
		}
		r.line++
		text := strings.TrimSuffix(r.sc.Text(), "\r")
		if r.format == FormatLines {
			if strings.TrimSpace(text) == "" {
				continue
			}
			r.rec = Record{
				Kind: KindText,
				Text: text,
				Pos:  Position{Index: r.index, Line: r.line, Column: 1},
			}
			r.index++
			return true
		}
		r.fields = splitFields(text)
		r.next = 0
	}
}

// Record returns the record produced by the most recent successful Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first error encountered while scanning, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) build(f field) (Record, error) {
	pos := Position{Index: r.index, Line: r.line, Column: f.col}
	if r.format == FormatNumeric {
		v, err := strconv.ParseFloat(f.text, 64)
		if err != nil {
			return Record{}, &ParseError{Line: r.line, Column: f.col, Token: f.text, Format: r.format}
		}
		return Record{Kind: KindNumeric, Value: v, Text: f.text, Pos: pos}, nil
	}
	return Record{Kind: KindText, Text: f.text, Pos: pos}, nil
}

// splitFields cuts a line into whitespace-separated tokens, keeping the
// 1-based start column of each token for error and report positions.
func splitFields(line string) []field {
	var out []field
	i := 0
	for i < len(line) {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		out = append(out, field{text: line[start:i], col: start + 1})
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}
