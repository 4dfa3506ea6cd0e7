// Package report turns a comparison run into its human and machine
// readable artifacts.
//
// A Builder rides along the comparator as its outcome sink: it keeps the
// first MaxFindings divergences, per-side record counts and running
// deviation aggregates, all in flat memory. Build then assembles the final
// Report, which renders as a sectioned text summary (WriteText) or as
// indented JSON (WriteJSON).
//
// For lines-format comparisons a unified diff section can be enabled. The
// diff is the one place that buffers input material, so it is capped at a
// fixed number of lines per side and marked truncated beyond that.
package report
