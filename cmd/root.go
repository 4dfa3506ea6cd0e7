package cmd

import (
	"errors"
	"fmt"
	"os"

	"numcompare/core/logger"
	"numcompare/feature/filecompare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command; the comparison runs directly on it.
var RootCmd = &cobra.Command{
	Use:   "numcompare <left> <right>",
	Short: "Compare two record files within configurable tolerance",
	Long: `numcompare compares two files record by record and reports whether they
are equal within a configurable numeric tolerance. Inputs can be columns
of floating-point numbers, whitespace-separated tokens or whole lines;
"-" reads one side from stdin and .gz files are decompressed on the fly.

Exit status: 0 when the inputs are equal, 1 when they diverge, 2 on
configuration, parse or IO errors.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Divergence is a result, not a fault: the report already went to
		// stdout, only the exit status distinguishes it.
		if errors.Is(err, filecompare.ErrNotEqual) {
			os.Exit(1)
		}

		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(2)
	}
}
