package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wealthify/fincalc/internal/calculation"
	"github.com/wealthify/fincalc/internal/compare"
	"github.com/wealthify/fincalc/internal/config"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare scenarios against a base scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if cfg.BaseYear == 0 {
			cfg.BaseYear = time.Now().Year()
		}

		engine := calculation.NewCalculationEngine()
		results, err := engine.RunScenarios(cfg)
		if err != nil {
			return err
		}

		baseName, _ := cmd.Flags().GetString("base")
		cs, err := compare.BuildComparison(results, baseName)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "":
			fmt.Print(compare.FormatTable(cs))
		case "csv":
			data, err := compare.FormatCSV(cs)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
		case "json":
			data, err := compare.FormatJSON(cs)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unsupported comparison format %q (table, csv, json)", format)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().String("base", "", "name of the base scenario (default: first in file)")
	compareCmd.Flags().String("format", "table", "comparison format (table, csv, json)")
}
