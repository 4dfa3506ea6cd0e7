package report

// Config holds the report generation settings.
type Config struct {
	// MaxFindings caps how many divergent pairs are listed individually.
	// Divergences beyond the cap are still counted, just not listed.
	MaxFindings int `mapstructure:"max_findings" default:"20"`
	// Diff appends a unified diff section to the text report. It applies
	// to the lines format only and buffers input lines up to a fixed cap.
	Diff bool `mapstructure:"diff" default:"false"`
}
