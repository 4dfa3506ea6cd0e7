package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format selects the log encoding: console or json.
	Format string `mapstructure:"format" default:"console"`
}
