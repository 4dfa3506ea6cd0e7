package compare

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numcompare/core/align"
	"numcompare/core/record"
	"numcompare/core/record/mocks"
	"numcompare/core/tolerance"
)

func nums(vals ...float64) record.Source {
	seq := make(record.Sequence, len(vals))
	for i, v := range vals {
		seq[i] = record.Record{
			Kind:  record.KindNumeric,
			Value: v,
			Text:  fmt.Sprintf("%g", v),
			Pos:   record.Position{Index: i, Line: i + 1, Column: 1},
		}
	}
	return record.SliceSource(seq)
}

func texts(tokens ...string) record.Source {
	seq := make(record.Sequence, len(tokens))
	for i, tok := range tokens {
		seq[i] = record.Record{
			Kind: record.KindText,
			Text: tok,
			Pos:  record.Position{Index: i, Line: i + 1, Column: 1},
		}
	}
	return record.SliceSource(seq)
}

func policy(t *testing.T, cfg tolerance.Config) *tolerance.Policy {
	t.Helper()
	p, err := tolerance.NewPolicy(cfg)
	require.NoError(t, err)
	return p
}

// TestRunIdenticalInputs verifies that identical numeric inputs compare
// equal under exact mode with every pair matching.
func TestRunIdenticalInputs(t *testing.T) {
	v, err := Run(
		align.NewWalker(nums(1, 2.5, -3, 0), nums(1, 2.5, -3, 0)),
		policy(t, tolerance.Config{Mode: "exact"}),
		nil,
	)

	require.NoError(t, err)
	assert.True(t, v.Equal())
	assert.Equal(t, 4, v.TotalPairs)
	assert.Equal(t, 4, v.Matches)
	assert.Zero(t, v.Mismatches)
	assert.Zero(t, v.MaxDeviation)
}

// TestRunToleranceBoundary verifies the flagship tolerance case: a 1e-7
// drift passes under epsilon 1e-6 and fails under epsilon 1e-9, with the
// drift reported as the maximum deviation.
func TestRunToleranceBoundary(t *testing.T) {
	loose, err := Run(
		align.NewWalker(nums(3.0), nums(3.0000001)),
		policy(t, tolerance.Config{Mode: "absolute", AbsoluteEpsilon: 1e-6}),
		nil,
	)
	require.NoError(t, err)
	assert.True(t, loose.Equal())
	assert.InDelta(t, 1e-7, loose.MaxDeviation, 1e-9)

	tight, err := Run(
		align.NewWalker(nums(3.0), nums(3.0000001)),
		policy(t, tolerance.Config{Mode: "absolute", AbsoluteEpsilon: 1e-9}),
		nil,
	)
	require.NoError(t, err)
	assert.False(t, tight.Equal())
	assert.Equal(t, 1, tight.Mismatches)
	assert.InDelta(t, 1e-7, tight.MaxDeviation, 1e-9)
}

// TestRunTextMismatch verifies verbatim text comparison with a single
// differing token.
func TestRunTextMismatch(t *testing.T) {
	var outcomes []Outcome
	v, err := Run(
		align.NewWalker(texts("a", "b", "c"), texts("a", "x", "c")),
		policy(t, tolerance.Config{Mode: "exact"}),
		func(out Outcome) { outcomes = append(outcomes, out) },
	)

	require.NoError(t, err)
	assert.False(t, v.Equal())
	assert.Equal(t, 3, v.TotalPairs)
	assert.Equal(t, 2, v.Matches)
	assert.Equal(t, 1, v.Mismatches)

	require.Len(t, outcomes, 3)
	assert.Equal(t, ClassMismatch, outcomes[1].Class)
	assert.Equal(t, 1, outcomes[1].Pair.Index)
	assert.True(t, math.IsNaN(outcomes[1].Deviation))
}

// TestRunLengthMismatch verifies that surplus records are counted as
// missing on the shorter side and force a not-equal verdict.
func TestRunLengthMismatch(t *testing.T) {
	v, err := Run(
		align.NewWalker(nums(1, 2, 3, 4, 5), nums(1, 2, 3)),
		policy(t, tolerance.Config{Mode: "exact"}),
		nil,
	)

	require.NoError(t, err)
	assert.False(t, v.Equal())
	assert.Equal(t, 5, v.TotalPairs)
	assert.Equal(t, 3, v.Matches)
	assert.Equal(t, 2, v.MissingRight)
	assert.Zero(t, v.MissingLeft)
}

// TestRunPrefixByOne verifies that dropping the last record of one side
// costs exactly one missing record and keeps the rest matching.
func TestRunPrefixByOne(t *testing.T) {
	v, err := Run(
		align.NewWalker(nums(1, 2, 3, 4), nums(1, 2, 3)),
		policy(t, tolerance.Config{Mode: "exact"}),
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 3, v.Matches)
	assert.Equal(t, 1, v.MissingRight)
	assert.Zero(t, v.Mismatches)
	assert.False(t, v.Equal())
}

// TestRunEmptyInputs verifies that two empty inputs compare equal with an
// all-zero verdict.
func TestRunEmptyInputs(t *testing.T) {
	v, err := Run(
		align.NewWalker(nums(), nums()),
		policy(t, tolerance.Config{Mode: "exact"}),
		nil,
	)

	require.NoError(t, err)
	assert.True(t, v.Equal())
	assert.Zero(t, v.TotalPairs)
}

// TestRunCountInvariant verifies that the total always equals the sum of
// the four class counts on a mixed scenario.
func TestRunCountInvariant(t *testing.T) {
	var classes []Class
	v, err := Run(
		align.NewWalker(nums(1, 2, 3, 4, 5), nums(1, 2.5, 3)),
		policy(t, tolerance.Config{Mode: "exact"}),
		func(out Outcome) { classes = append(classes, out.Class) },
	)

	require.NoError(t, err)
	assert.Equal(t, v.TotalPairs, v.Matches+v.Mismatches+v.MissingLeft+v.MissingRight)
	assert.Equal(t, []Class{ClassMatch, ClassMismatch, ClassMatch, ClassMissingRight, ClassMissingRight}, classes)
}

// TestRunMaxDeviationSkipsNonFinite verifies that NaN and Inf deviations
// never become the reported maximum.
func TestRunMaxDeviationSkipsNonFinite(t *testing.T) {
	v, err := Run(
		align.NewWalker(nums(math.NaN(), math.Inf(1), 1), nums(1, 2, 1.5)),
		policy(t, tolerance.Config{Mode: "absolute", AbsoluteEpsilon: 10}),
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.5, v.MaxDeviation)
	assert.Equal(t, 2, v.Mismatches)
	assert.Equal(t, 1, v.Matches)
}

// TestRunMatchedPairsFeedMaxDeviation verifies that deviations of matched
// pairs count towards the maximum, not only mismatches.
func TestRunMatchedPairsFeedMaxDeviation(t *testing.T) {
	v, err := Run(
		align.NewWalker(nums(1, 2), nums(1.5, 2)),
		policy(t, tolerance.Config{Mode: "absolute", AbsoluteEpsilon: 1}),
		nil,
	)

	require.NoError(t, err)
	assert.True(t, v.Equal())
	assert.Equal(t, 0.5, v.MaxDeviation)
}

// TestRunSourceError verifies that a failing source aborts the run without
// producing a verdict.
func TestRunSourceError(t *testing.T) {
	boom := errors.New("torn stream")
	left := &mocks.Source{}
	left.On("Scan").Return(false)
	left.On("Err").Return(boom)

	v, err := Run(
		align.NewWalker(left, nums(1, 2)),
		policy(t, tolerance.Config{Mode: "exact"}),
		nil,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Verdict{}, v)
	left.AssertExpectations(t)
}

// TestVerdictEqual verifies the equality rule over the count classes.
func TestVerdictEqual(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    bool
	}{
		{"all matches", Verdict{TotalPairs: 3, Matches: 3}, true},
		{"empty run", Verdict{}, true},
		{"one mismatch", Verdict{TotalPairs: 3, Matches: 2, Mismatches: 1}, false},
		{"missing left", Verdict{TotalPairs: 1, MissingLeft: 1}, false},
		{"missing right", Verdict{TotalPairs: 1, MissingRight: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.verdict.Equal())
		})
	}
}
