// Package tolerance decides when two records count as equivalent.
//
// A Policy is built once per run from a validated Config and applied to
// every aligned pair. Text records always compare verbatim; the tolerance
// arithmetic applies to numeric records only.
//
// # Modes
//
//   - exact: bit-identical values (math.Float64bits), so 0.0 and -0.0
//     differ and NaN equals NaN
//   - absolute: |a-b| <= absolute epsilon
//   - relative: |a-b| <= relative epsilon * max(|a|, |b|); two exact zeros
//     are equivalent regardless of epsilon
//   - combined: absolute or relative, whichever passes
//
// Under the epsilon modes NaN is equivalent to NaN and to nothing else, and
// equal infinities are equivalent. The predicate is symmetric in its
// arguments and widening an epsilon never turns an equivalent pair into a
// divergent one.
package tolerance
