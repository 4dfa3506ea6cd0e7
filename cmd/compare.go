package cmd

import (
	"fmt"
	"os"
	"time"

	"numcompare/core/config"
	"numcompare/core/logger"
	"numcompare/feature/filecompare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	formatFlag      string
	modeFlag        string
	absEpsFlag      float64
	relEpsFlag      float64
	maxFindingsFlag int
	diffFlag        bool
	jsonFlag        bool
	quietFlag       bool
)

func init() {
	flags := RootCmd.Flags()
	flags.StringVar(&formatFlag, "format", "", "Input format: numeric, tokens or lines")
	flags.StringVar(&modeFlag, "mode", "", "Tolerance mode: exact, absolute, relative or combined")
	flags.Float64Var(&absEpsFlag, "abs-eps", 0, "Absolute epsilon for the absolute and combined modes")
	flags.Float64Var(&relEpsFlag, "rel-eps", 0, "Relative epsilon for the relative and combined modes")
	flags.IntVar(&maxFindingsFlag, "max-findings", 0, "Maximum number of divergences listed in the report")
	flags.BoolVar(&diffFlag, "diff", false, "Append a unified diff section (lines format only)")
	flags.BoolVar(&jsonFlag, "json", false, "Additionally save the report as a timestamped JSON file")
	flags.BoolVar(&quietFlag, "quiet", false, "Suppress the text report; the exit status carries the result")
}

func runCompare(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Layer explicitly set flags over the env/default configuration
	applyFlagOverrides(cmd, cfg)

	// 3. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	// 4. Run the comparison
	svc := filecompare.NewService(cfg, logg)
	rep, err := svc.Run(args[0], args[1])
	if err != nil {
		return err
	}

	// 5. Emit the report
	if !quietFlag {
		if err := rep.WriteText(os.Stdout); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if jsonFlag {
		filename := fmt.Sprintf("compare_report_%d.json", time.Now().Unix())
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to save JSON report: %w", err)
		}
		if err := rep.WriteJSON(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logg.Info("JSON report saved", zap.String("file", filename))
	}

	if !rep.Equal {
		return filecompare.ErrNotEqual
	}
	return nil
}

// applyFlagOverrides copies explicitly set flags into the configuration.
// Flags the user did not touch leave the env/default values alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Input.Format = formatFlag
	}
	if flags.Changed("mode") {
		cfg.Tolerance.Mode = modeFlag
	}
	if flags.Changed("abs-eps") {
		cfg.Tolerance.AbsoluteEpsilon = absEpsFlag
	}
	if flags.Changed("rel-eps") {
		cfg.Tolerance.RelativeEpsilon = relEpsFlag
	}
	if flags.Changed("max-findings") {
		cfg.Report.MaxFindings = maxFindingsFlag
	}
	if flags.Changed("diff") {
		cfg.Report.Diff = diffFlag
	}
}
