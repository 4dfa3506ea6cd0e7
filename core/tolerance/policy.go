package tolerance

import (
	"fmt"
	"math"

	"numcompare/core/record"
)

// Policy is the equivalence predicate for record pairs under one fixed
// tolerance configuration.
type Policy struct {
	mode   Mode
	absEps float64
	relEps float64
}

// NewPolicy validates cfg and builds the policy for it.
func NewPolicy(cfg Config) (*Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Policy{
		mode:   Mode(cfg.Mode),
		absEps: cfg.AbsoluteEpsilon,
		relEps: cfg.RelativeEpsilon,
	}, nil
}

// Mode returns the comparison rule this policy applies.
func (p *Policy) Mode() Mode {
	return p.mode
}

// Describe returns a short description of the policy for logs and reports.
func (p *Policy) Describe() string {
	switch p.mode {
	case ModeAbsolute:
		return fmt.Sprintf("absolute (eps %g)", p.absEps)
	case ModeRelative:
		return fmt.Sprintf("relative (eps %g)", p.relEps)
	case ModeCombined:
		return fmt.Sprintf("combined (abs %g, rel %g)", p.absEps, p.relEps)
	default:
		return "exact"
	}
}

// Equivalent reports whether two records are equal under the policy. Text
// records compare verbatim in every mode; the epsilon arithmetic applies to
// numeric records only.
func (p *Policy) Equivalent(a, b record.Record) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == record.KindText {
		return a.Text == b.Text
	}
	switch p.mode {
	case ModeAbsolute:
		return p.withinAbsolute(a.Value, b.Value)
	case ModeRelative:
		return p.withinRelative(a.Value, b.Value)
	case ModeCombined:
		return p.withinAbsolute(a.Value, b.Value) || p.withinRelative(a.Value, b.Value)
	default:
		return math.Float64bits(a.Value) == math.Float64bits(b.Value)
	}
}

func (p *Policy) withinAbsolute(a, b float64) bool {
	if same(a, b) {
		return true
	}
	return math.Abs(a-b) <= p.absEps
}

func (p *Policy) withinRelative(a, b float64) bool {
	if same(a, b) {
		return true
	}
	// same already accepted equal infinities; any other infinite operand
	// would make the threshold infinite and admit every partner.
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= p.relEps*math.Max(math.Abs(a), math.Abs(b))
}

// same short-circuits the epsilon arithmetic: identical values, including
// two zeros of either sign and two infinities of one sign, are equivalent,
// and NaN on both sides counts as equivalent. This keeps NaN and Inf
// operands out of the subtraction, which would otherwise poison the test.
func same(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

// Deviation returns the magnitude of the difference between two records:
// |a-b| for a numeric pair, NaN when either side is text. Text distance is
// deliberately undefined; reports render it as absent.
func Deviation(a, b record.Record) float64 {
	if a.Kind == record.KindNumeric && b.Kind == record.KindNumeric {
		return math.Abs(a.Value - b.Value)
	}
	return math.NaN()
}

// CheckFormat verifies that the tolerance mode is applicable to the input
// format. The epsilon arithmetic is defined for numeric records only, so
// every mode except exact requires the numeric format.
func CheckFormat(mode Mode, format record.Format) error {
	if mode != ModeExact && format != record.FormatNumeric {
		return &ConfigError{
			Reason: fmt.Sprintf("mode %q applies to numeric input only (format is %q)", mode, format),
		}
	}
	return nil
}
