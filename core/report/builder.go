package report

import (
	"math"

	"github.com/pmezard/go-difflib/difflib"

	"numcompare/core/align"
	"numcompare/core/compare"
	"numcompare/core/record"
)

// diffLineCap bounds the lines buffered per side for the unified diff
// section. The comparison itself never buffers; only the optional diff
// needs the material in memory.
const diffLineCap = 10000

// Builder accumulates report material while the comparator streams
// outcomes through it. It keeps at most MaxFindings findings plus flat
// aggregates, so memory does not grow with input size.
type Builder struct {
	cfg Config

	findings   []Finding
	suppressed int

	leftRecords  int
	rightRecords int

	compared int
	sumAbs   float64
	sumSq    float64

	leftLines     []string
	rightLines    []string
	diffTruncated bool
}

// NewBuilder returns a Builder for one comparison run.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Observe consumes one classified pair in stream order. It is handed to
// the comparator as its sink.
func (b *Builder) Observe(out compare.Outcome) {
	if out.Pair.Left != nil {
		b.leftRecords++
	}
	if out.Pair.Right != nil {
		b.rightRecords++
	}
	if dev := out.Deviation; !math.IsNaN(dev) && !math.IsInf(dev, 0) {
		b.compared++
		b.sumAbs += dev
		b.sumSq += dev * dev
	}
	if b.cfg.Diff {
		b.bufferDiff(out.Pair)
	}

	if out.Class == compare.ClassMatch {
		return
	}
	if len(b.findings) >= b.cfg.MaxFindings {
		b.suppressed++
		return
	}
	b.findings = append(b.findings, newFinding(out))
}

// Build assembles the final report from the verdict and run metadata.
func (b *Builder) Build(v compare.Verdict, meta Meta) *Report {
	r := &Report{
		RunID:              meta.RunID,
		Left:               meta.Left,
		Right:              meta.Right,
		Format:             string(meta.Format),
		Tolerance:          meta.Tolerance,
		Equal:              v.Equal(),
		Verdict:            v,
		LeftRecords:        b.leftRecords,
		RightRecords:       b.rightRecords,
		Stats:              b.stats(),
		Findings:           b.findings,
		SuppressedFindings: b.suppressed,
		ExecutionTime:      meta.Elapsed.String(),
		leftBytes:          meta.LeftBytes,
		rightBytes:         meta.RightBytes,
	}
	if b.cfg.Diff && meta.Format == record.FormatLines {
		r.diff = b.renderDiff(meta)
		r.diffTruncated = b.diffTruncated
	}
	return r
}

func newFinding(out compare.Outcome) Finding {
	f := Finding{Index: out.Pair.Index, Class: out.Class.String()}
	if rec := out.Pair.Left; rec != nil {
		f.Left = &Side{Value: rec.Text, Line: rec.Pos.Line, Column: rec.Pos.Column}
	}
	if rec := out.Pair.Right; rec != nil {
		f.Right = &Side{Value: rec.Text, Line: rec.Pos.Line, Column: rec.Pos.Column}
	}
	if dev := out.Deviation; !math.IsNaN(dev) && !math.IsInf(dev, 0) {
		d := dev
		f.Deviation = &d
	}
	return f
}

func (b *Builder) bufferDiff(pair align.Pair) {
	if rec := pair.Left; rec != nil {
		if len(b.leftLines) < diffLineCap {
			b.leftLines = append(b.leftLines, rec.Text+"\n")
		} else {
			b.diffTruncated = true
		}
	}
	if rec := pair.Right; rec != nil {
		if len(b.rightLines) < diffLineCap {
			b.rightLines = append(b.rightLines, rec.Text+"\n")
		} else {
			b.diffTruncated = true
		}
	}
}

func (b *Builder) stats() Stats {
	if b.compared == 0 {
		return Stats{}
	}
	n := float64(b.compared)
	return Stats{
		ComparedNumeric:  b.compared,
		MeanAbsDeviation: b.sumAbs / n,
		RMSDeviation:     math.Sqrt(b.sumSq / n),
	}
}

func (b *Builder) renderDiff(meta Meta) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        b.leftLines,
		B:        b.rightLines,
		FromFile: meta.Left,
		ToFile:   meta.Right,
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return text
}
