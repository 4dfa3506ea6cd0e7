package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"numcompare/core/compare"
	"numcompare/core/record"
	"numcompare/core/utils"
)

// Side is one half of a finding: the record of one input exactly as read,
// with its position in that input.
type Side struct {
	// Value is the record content as it appeared in the input.
	Value string `json:"value"`
	// Line is the 1-based line the record starts on.
	Line int `json:"line"`
	// Column is the 1-based byte offset of the record on its line.
	Column int `json:"column"`
}

// Finding is one reported divergence between the inputs.
type Finding struct {
	// Index is the aligned position the divergence occurred at.
	Index int `json:"index"`
	// Class is the divergence kind: mismatch, missing_left or missing_right.
	Class string `json:"class"`
	// Left is the left record, absent when the left input had none.
	Left *Side `json:"left,omitempty"`
	// Right is the right record, absent when the right input had none.
	Right *Side `json:"right,omitempty"`
	// Deviation is |left-right| for numeric pairs, absent for text records
	// and missing sides.
	Deviation *float64 `json:"deviation,omitempty"`
}

// Stats summarizes the deviations across numeric pairs with both sides
// present. Only finite deviations enter the aggregates.
type Stats struct {
	// ComparedNumeric counts the numeric pairs the aggregates cover.
	ComparedNumeric int `json:"compared_numeric"`
	// MeanAbsDeviation is the average |left-right|.
	MeanAbsDeviation float64 `json:"mean_abs_deviation"`
	// RMSDeviation is the root mean square of |left-right|.
	RMSDeviation float64 `json:"rms_deviation"`
}

// Meta identifies one comparison run for reporting.
type Meta struct {
	RunID string
	// Left and Right are the input names as shown to the user.
	Left  string
	Right string
	// LeftBytes and RightBytes are the input sizes, or -1 when the size is
	// unknown (stdin, compressed streams).
	LeftBytes  int64
	RightBytes int64
	Format     record.Format
	// Tolerance is the policy description, e.g. "absolute (eps 1e-06)".
	Tolerance string
	Elapsed   time.Duration
}

// Report is the complete outcome of one comparison run.
type Report struct {
	RunID              string          `json:"run_id"`
	Left               string          `json:"left"`
	Right              string          `json:"right"`
	Format             string          `json:"format"`
	Tolerance          string          `json:"tolerance"`
	Equal              bool            `json:"equal"`
	Verdict            compare.Verdict `json:"verdict"`
	LeftRecords        int             `json:"left_records"`
	RightRecords       int             `json:"right_records"`
	Stats              Stats           `json:"stats"`
	Findings           []Finding       `json:"findings"`
	SuppressedFindings int             `json:"suppressed_findings"`
	ExecutionTime      string          `json:"execution_time"`

	leftBytes     int64
	rightBytes    int64
	diff          string
	diffTruncated bool
}

// WriteText renders the sectioned human-readable report.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	b.WriteString("\n=== Comparison Summary ===\n")
	fmt.Fprintf(&b, "Left: %s\n", describeInput(r.Left, r.LeftRecords, r.leftBytes))
	fmt.Fprintf(&b, "Right: %s\n", describeInput(r.Right, r.RightRecords, r.rightBytes))
	fmt.Fprintf(&b, "Format: %s\n", r.Format)
	fmt.Fprintf(&b, "Tolerance: %s\n", r.Tolerance)
	fmt.Fprintf(&b, "Total Pairs: %s\n", humanize.Comma(int64(r.Verdict.TotalPairs)))
	fmt.Fprintf(&b, "Matches: %s\n", humanize.Comma(int64(r.Verdict.Matches)))
	fmt.Fprintf(&b, "Mismatches: %s\n", humanize.Comma(int64(r.Verdict.Mismatches)))
	fmt.Fprintf(&b, "Missing Left: %s\n", humanize.Comma(int64(r.Verdict.MissingLeft)))
	fmt.Fprintf(&b, "Missing Right: %s\n", humanize.Comma(int64(r.Verdict.MissingRight)))
	if r.Stats.ComparedNumeric > 0 {
		fmt.Fprintf(&b, "Max Deviation: %s\n", utils.FormatFloat(r.Verdict.MaxDeviation))
		fmt.Fprintf(&b, "Mean Deviation: %s\n", utils.FormatFloat(r.Stats.MeanAbsDeviation))
		fmt.Fprintf(&b, "RMS Deviation: %s\n", utils.FormatFloat(r.Stats.RMSDeviation))
	}
	fmt.Fprintf(&b, "Execution Time: %s\n", r.ExecutionTime)
	if r.Equal {
		b.WriteString("Result: EQUAL\n")
	} else {
		b.WriteString("Result: NOT EQUAL\n")
	}

	if len(r.Findings) > 0 {
		divergences := r.Verdict.Mismatches + r.Verdict.MissingLeft + r.Verdict.MissingRight
		fmt.Fprintf(&b, "\n=== Divergences (%d of %s shown) ===\n",
			len(r.Findings), humanize.Comma(int64(divergences)))
		fmt.Fprintf(&b, "%8s  %-13s  %-9s  %-22s  %-22s  %s\n",
			"#", "Class", "Position", "Left", "Right", "Deviation")
		for _, f := range r.Findings {
			fmt.Fprintf(&b, "%8d  %-13s  %-9s  %-22s  %-22s  %s\n",
				f.Index, f.Class, f.position(), sideCell(f.Left), sideCell(f.Right), deviationCell(f.Deviation))
		}
		if r.SuppressedFindings > 0 {
			fmt.Fprintf(&b, "... and %s more not shown (raise report.max_findings to list them)\n",
				humanize.Comma(int64(r.SuppressedFindings)))
		}
	}

	if r.diff != "" {
		b.WriteString("\n=== Unified Diff ===\n")
		b.WriteString(r.diff)
		if r.diffTruncated {
			b.WriteString("(diff truncated: inputs exceed the buffered line cap)\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders the report as indented JSON, one document per run.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func describeInput(name string, records int, size int64) string {
	if size >= 0 {
		return fmt.Sprintf("%s (%s %s, %s)",
			name, humanize.Comma(int64(records)), utils.Plural(records, "record", "records"),
			humanize.Bytes(uint64(size)))
	}
	return fmt.Sprintf("%s (%s %s)",
		name, humanize.Comma(int64(records)), utils.Plural(records, "record", "records"))
}

// position renders the line:column of whichever side is present. For pairs
// with both sides the left position is shown.
func (f Finding) position() string {
	side := f.Left
	if side == nil {
		side = f.Right
	}
	if side == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%d", side.Line, side.Column)
}

func sideCell(s *Side) string {
	if s == nil {
		return "<absent>"
	}
	return utils.Truncate(s.Value, 22)
}

func deviationCell(d *float64) string {
	if d == nil {
		return "-"
	}
	return utils.FormatFloat(*d)
}
