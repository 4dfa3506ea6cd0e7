package config

import (
	"fmt"
	"reflect"
	"strings"

	"numcompare/core/logger"
	"numcompare/core/record"
	"numcompare/core/report"
	"numcompare/core/tolerance"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Input holds the record parsing settings.
	Input record.Config `mapstructure:"input"`
	// Tolerance holds the numeric comparison settings.
	Tolerance tolerance.Config `mapstructure:"tolerance"`
	// Report holds the report generation settings.
	Report report.Config `mapstructure:"report"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. TOLERANCE_MODE -> tolerance.mode)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded configuration before any input is read.
// Everything it rejects surfaces as a *tolerance.ConfigError.
func (c *Config) Validate() error {
	format := record.Format(c.Input.Format)
	if !format.Valid() {
		return &tolerance.ConfigError{
			Reason: fmt.Sprintf("unknown input format %q (expected numeric, tokens or lines)", c.Input.Format),
		}
	}
	if err := c.Tolerance.Validate(); err != nil {
		return err
	}
	if c.Report.MaxFindings < 0 {
		return &tolerance.ConfigError{Reason: "report.max_findings must not be negative"}
	}
	return tolerance.CheckFormat(tolerance.Mode(c.Tolerance.Mode), format)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
