package record

// Config holds the input parsing settings.
type Config struct {
	// Format is the record format applied to both inputs: numeric, tokens
	// or lines.
	Format string `mapstructure:"format" default:"numeric"`
}
