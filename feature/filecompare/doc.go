// Package filecompare wires the comparison pipeline end to end.
//
// The Service opens the two inputs, streams their records through the
// positional aligner and the comparator, and assembles the report. A run
// either completes with a full verdict over every record of both inputs,
// or aborts on the first configuration, IO or parse error without
// producing a verdict.
//
// Inputs are plain local files; the path "-" reads stdin and files ending
// in .gz are decompressed on the fly. Nothing is ever written back to the
// inputs.
package filecompare
