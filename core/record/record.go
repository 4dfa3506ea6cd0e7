package record

// Format identifies how raw input bytes are cut into records.
type Format string

const (
	// FormatNumeric parses whitespace-separated floating-point tokens.
	FormatNumeric Format = "numeric"
	// FormatTokens cuts whitespace-separated text tokens.
	FormatTokens Format = "tokens"
	// FormatLines treats every non-blank line as one record.
	FormatLines Format = "lines"
)

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatNumeric, FormatTokens, FormatLines:
		return true
	}
	return false
}

// Kind distinguishes numeric records from text records.
type Kind uint8

const (
	// KindNumeric marks a record carrying a parsed floating-point value.
	KindNumeric Kind = iota
	// KindText marks a record compared as a verbatim string.
	KindText
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Position locates a record in its source stream.
type Position struct {
	// Index is the 0-based ordinal of the record in the stream.
	Index int `json:"index"`
	// Line is the 1-based line number the record starts on.
	Line int `json:"line"`
	// Column is the 1-based byte offset of the record on its line.
	Column int `json:"column"`
}

// Record is the atomic unit of comparison. Value is meaningful only for
// KindNumeric; Text always holds the token exactly as it was read, so
// reports can show the original spelling of a value.
type Record struct {
	Kind  Kind
	Value float64
	Text  string
	Pos   Position
}

// String returns the record content as read from the input.
func (r Record) String() string {
	return r.Text
}
