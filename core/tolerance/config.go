package tolerance

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Mode selects the comparison rule applied to numeric record pairs.
type Mode string

const (
	// ModeExact requires bit-identical numeric values and identical text.
	ModeExact Mode = "exact"
	// ModeAbsolute accepts |a-b| <= AbsoluteEpsilon.
	ModeAbsolute Mode = "absolute"
	// ModeRelative accepts |a-b| <= RelativeEpsilon * max(|a|, |b|).
	ModeRelative Mode = "relative"
	// ModeCombined accepts a pair when either the absolute or the relative
	// rule accepts it.
	ModeCombined Mode = "combined"
)

// Config holds the tolerance settings for a comparison run.
type Config struct {
	// Mode is the comparison rule: exact, absolute, relative or combined.
	Mode string `mapstructure:"mode" default:"exact" validate:"oneof=exact absolute relative combined"`
	// AbsoluteEpsilon is the largest absolute difference still accepted.
	AbsoluteEpsilon float64 `mapstructure:"absolute_epsilon" default:"0" validate:"gte=0"`
	// RelativeEpsilon is the largest difference relative to the bigger
	// magnitude still accepted.
	RelativeEpsilon float64 `mapstructure:"relative_epsilon" default:"0" validate:"gte=0"`
}

// Validate checks the mode name and epsilon ranges. It returns a
// *ConfigError so callers can reject the run before any input is read.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Reason: "tolerance settings rejected", Err: err}
	}
	return nil
}

// ConfigError reports an invalid comparison configuration, such as a
// negative epsilon or a tolerance mode applied to non-numeric input. It is
// fatal and always raised before the first record is read.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Reason, e.Err)
	}
	return "invalid configuration: " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
