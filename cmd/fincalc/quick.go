package main

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wealthify/fincalc/internal/calculation"
	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/internal/output"
)

// finiteDecimal converts a flag value to a decimal, rejecting NaN and
// infinities before they reach the engine.
func finiteDecimal(v float64, name string) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, fmt.Errorf("%s must be a finite number, got %v", name, v)
	}
	return decimal.NewFromFloat(v), nil
}

func printSingle(result *domain.ScenarioResult) error {
	set := &domain.ProjectionSet{
		BaseYear: time.Now().Year(),
		Results:  []domain.ScenarioResult{*result},
	}
	data, err := (output.ConsoleFormatter{}).Format(set)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func addQuickCommands(root *cobra.Command) {
	root.AddCommand(sipCmd())
	root.AddCommand(swpCmd())
	root.AddCommand(emiCmd())
	root.AddCommand(lumpsumCmd())
	root.AddCommand(topupCmd())
	root.AddCommand(inflationCmd())
}

func sipCmd() *cobra.Command {
	var contribution, rate float64
	var years int
	var frequency string
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project a systematic investment plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := finiteDecimal(contribution, "contribution")
			if err != nil {
				return err
			}
			r, err := finiteDecimal(rate, "rate")
			if err != nil {
				return err
			}
			freq, err := domain.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			result, err := calculation.ComputeSIP(domain.SIPInput{
				Contribution:      c,
				AnnualRatePercent: r,
				Years:             years,
				Frequency:         freq,
				BaseYear:          time.Now().Year(),
			})
			if err != nil {
				return err
			}
			return printSingle(&domain.ScenarioResult{Name: "SIP", Calculator: domain.CalculatorSIP, SIP: result})
		},
	}
	cmd.Flags().Float64Var(&contribution, "contribution", 0, "periodic contribution amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 0, "investment horizon in years")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "contribution frequency (daily, weekly, monthly, quarterly, yearly)")
	return cmd
}

func swpCmd() *cobra.Command {
	var investment, withdrawal, rate float64
	var years int
	cmd := &cobra.Command{
		Use:   "swp",
		Short: "Project a systematic withdrawal plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := finiteDecimal(investment, "investment")
			if err != nil {
				return err
			}
			w, err := finiteDecimal(withdrawal, "withdrawal")
			if err != nil {
				return err
			}
			r, err := finiteDecimal(rate, "rate")
			if err != nil {
				return err
			}
			result, err := calculation.ComputeSWP(domain.SWPInput{
				InitialInvestment: inv,
				MonthlyWithdrawal: w,
				AnnualRatePercent: r,
				Years:             years,
				BaseYear:          time.Now().Year(),
			})
			if err != nil {
				return err
			}
			return printSingle(&domain.ScenarioResult{Name: "SWP", Calculator: domain.CalculatorSWP, SWP: result})
		},
	}
	cmd.Flags().Float64Var(&investment, "investment", 0, "initial corpus")
	cmd.Flags().Float64Var(&withdrawal, "withdrawal", 0, "fixed monthly withdrawal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 0, "withdrawal horizon in years")
	return cmd
}

func emiCmd() *cobra.Command {
	var principal, rate float64
	var tenure int
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Project an amortizing loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := finiteDecimal(principal, "principal")
			if err != nil {
				return err
			}
			r, err := finiteDecimal(rate, "rate")
			if err != nil {
				return err
			}
			result, err := calculation.ComputeEMI(domain.EMIInput{
				Principal:         p,
				AnnualRatePercent: r,
				TenureYears:       tenure,
				BaseYear:          time.Now().Year(),
			})
			if err != nil {
				return err
			}
			return printSingle(&domain.ScenarioResult{Name: "EMI", Calculator: domain.CalculatorEMI, EMI: result})
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&tenure, "tenure", 0, "loan tenure in years")
	return cmd
}

func lumpsumCmd() *cobra.Command {
	var amount, rate float64
	var years int
	cmd := &cobra.Command{
		Use:   "lumpsum",
		Short: "Project a one-time investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := finiteDecimal(amount, "amount")
			if err != nil {
				return err
			}
			r, err := finiteDecimal(rate, "rate")
			if err != nil {
				return err
			}
			result, err := calculation.ComputeLumpsum(domain.LumpsumInput{
				Amount:            a,
				AnnualRatePercent: r,
				Years:             years,
				BaseYear:          time.Now().Year(),
			})
			if err != nil {
				return err
			}
			return printSingle(&domain.ScenarioResult{Name: "Lumpsum", Calculator: domain.CalculatorLumpsum, Lumpsum: result})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "investment amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 0, "investment horizon in years")
	return cmd
}

func topupCmd() *cobra.Command {
	var contribution, increase, rate float64
	var years int
	var frequency string
	cmd := &cobra.Command{
		Use:   "topup",
		Short: "Project a SIP with a yearly contribution step-up",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := finiteDecimal(contribution, "contribution")
			if err != nil {
				return err
			}
			inc, err := finiteDecimal(increase, "increase")
			if err != nil {
				return err
			}
			r, err := finiteDecimal(rate, "rate")
			if err != nil {
				return err
			}
			freq, err := domain.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			result, err := calculation.ComputeSIPTopUp(domain.TopUpInput{
				StartContribution:     c,
				AnnualIncreasePercent: inc,
				AnnualRatePercent:     r,
				Years:                 years,
				Frequency:             freq,
				BaseYear:              time.Now().Year(),
			})
			if err != nil {
				return err
			}
			return printSingle(&domain.ScenarioResult{Name: "SIP Top-Up", Calculator: domain.CalculatorTopUp, TopUp: result})
		},
	}
	cmd.Flags().Float64Var(&contribution, "contribution", 0, "starting periodic contribution")
	cmd.Flags().Float64Var(&increase, "increase", 0, "yearly contribution increase in percent")
	cmd.Flags().Float64Var(&rate, "rate", 0, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 0, "investment horizon in years")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "contribution frequency (daily, weekly, monthly, quarterly, yearly)")
	return cmd
}

func inflationCmd() *cobra.Command {
	var amount, rate float64
	var years int
	cmd := &cobra.Command{
		Use:   "inflation",
		Short: "Project purchasing-power erosion",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := finiteDecimal(amount, "amount")
			if err != nil {
				return err
			}
			r, err := finiteDecimal(rate, "rate")
			if err != nil {
				return err
			}
			result, err := calculation.ComputeInflation(domain.InflationInput{
				Amount:            a,
				AnnualRatePercent: r,
				Years:             years,
				BaseYear:          time.Now().Year(),
			})
			if err != nil {
				return err
			}
			return printSingle(&domain.ScenarioResult{Name: "Inflation", Calculator: domain.CalculatorInflation, Inflation: result})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "present-day amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual inflation rate in percent")
	cmd.Flags().IntVar(&years, "years", 0, "projection horizon in years")
	return cmd
}
