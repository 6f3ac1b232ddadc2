package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wealthify/fincalc/internal/calculation"
	"github.com/wealthify/fincalc/internal/config"
	"github.com/wealthify/fincalc/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zapEngineLogger bridges the engine's Logger interface to zap.
type zapEngineLogger struct {
	s *zap.SugaredLogger
}

func (l zapEngineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapEngineLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

func newLogger(debugMode bool) (*zap.Logger, error) {
	if debugMode {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Financial projection calculator CLI",
	Long:  "Deterministic SIP, SWP, EMI, lumpsum, top-up and inflation projections",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run every scenario in a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugMode, _ := cmd.Flags().GetBool("debug")
		logger, err := newLogger(debugMode)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
		sugar := logger.Sugar()

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if cfg.BaseYear == 0 {
			baseYear, _ := cmd.Flags().GetInt("base-year")
			cfg.BaseYear = baseYear
		}

		engine := calculation.NewCalculationEngine()
		if debugMode {
			engine.SetLogger(zapEngineLogger{s: sugar})
			engine.Debug = true
		}

		results, err := engine.RunScenarios(cfg)
		if err != nil {
			return err
		}
		sugar.Debugw("calculation complete", "scenarios", len(results.Results))

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (available: %v)", format, output.FormatNames())
		}

		if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
			if err := output.WriteFormatted(f, results, outPath); err != nil {
				return err
			}
			sugar.Infow("report written", "path", outPath, "format", f.Name())
			return nil
		}

		data, err := f.Format(results)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Configuration file %s is valid\n", args[0])
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	calculateCmd.Flags().String("format", "console", "output format (console, csv, detailed-csv, json, html, xlsx)")
	calculateCmd.Flags().String("output", "", "write the report to a file instead of stdout")
	calculateCmd.Flags().Int("base-year", time.Now().Year(), "calendar year of the first projection row when the file does not set one")
	calculateCmd.Flags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd())
	addQuickCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
