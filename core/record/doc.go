// Package record parses comparison inputs into ordered streams of records.
//
// A record is the atomic unit of comparison: a floating-point value in the
// numeric format, or a verbatim text token in the tokens and lines formats.
// Records are produced lazily by a Reader, which walks its input exactly
// once and hands out records in stream order together with their source
// position (line and column) for reporting.
//
// # Formats
//
//   - numeric: whitespace-separated floating-point tokens (columnar data)
//   - tokens: whitespace-separated text tokens, compared verbatim
//   - lines: every non-blank line is one record, compared verbatim
//
// Whitespace and blank lines separate records and are never content
// themselves, except that interior whitespace of a lines record belongs to
// the record.
//
// # Usage
//
//	r := record.NewReader(f, record.FormatNumeric)
//	for r.Scan() {
//	    rec := r.Record()
//	    // ...
//	}
//	if err := r.Err(); err != nil {
//	    // a *record.ParseError carries line, column and the offending token
//	}
package record
