package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wealthify/fincalc/internal/domain"
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates a configuration from raw YAML.
func (ip *InputParser) Load(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if cfg.BaseYear < 0 {
		return fmt.Errorf("base year must not be negative, got %d", cfg.BaseYear)
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := map[string]bool{}
	for i, sc := range cfg.Scenarios {
		if err := ip.validateScenario(&sc); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, sc.Name, err)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
	}
	return nil
}

func (ip *InputParser) validateScenario(sc *domain.Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !sc.Calculator.IsValid() {
		return fmt.Errorf("unknown calculator %q", sc.Calculator)
	}

	blocks := 0
	if sc.SIP != nil {
		blocks++
	}
	if sc.SWP != nil {
		blocks++
	}
	if sc.EMI != nil {
		blocks++
	}
	if sc.Lumpsum != nil {
		blocks++
	}
	if sc.TopUp != nil {
		blocks++
	}
	if sc.Inflation != nil {
		blocks++
	}
	if blocks != 1 {
		return fmt.Errorf("exactly one parameter block is required, got %d", blocks)
	}

	switch sc.Calculator {
	case domain.CalculatorSIP:
		if sc.SIP == nil {
			return fmt.Errorf("sip parameters are required")
		}
		return validateCommon(sc.SIP.Contribution, sc.SIP.AnnualRatePercent, sc.SIP.Years)
	case domain.CalculatorSWP:
		if sc.SWP == nil {
			return fmt.Errorf("swp parameters are required")
		}
		if err := validateCommon(sc.SWP.InitialInvestment, sc.SWP.AnnualRatePercent, sc.SWP.Years); err != nil {
			return err
		}
		if sc.SWP.MonthlyWithdrawal.IsNegative() {
			return fmt.Errorf("monthly withdrawal must not be negative")
		}
	case domain.CalculatorEMI:
		if sc.EMI == nil {
			return fmt.Errorf("emi parameters are required")
		}
		return validateCommon(sc.EMI.Principal, sc.EMI.AnnualRatePercent, sc.EMI.TenureYears)
	case domain.CalculatorLumpsum:
		if sc.Lumpsum == nil {
			return fmt.Errorf("lumpsum parameters are required")
		}
		return validateCommon(sc.Lumpsum.Amount, sc.Lumpsum.AnnualRatePercent, sc.Lumpsum.Years)
	case domain.CalculatorTopUp:
		if sc.TopUp == nil {
			return fmt.Errorf("topup parameters are required")
		}
		if err := validateCommon(sc.TopUp.StartContribution, sc.TopUp.AnnualRatePercent, sc.TopUp.Years); err != nil {
			return err
		}
		if sc.TopUp.AnnualIncreasePercent.IsNegative() {
			return fmt.Errorf("annual increase must not be negative")
		}
	case domain.CalculatorInflation:
		if sc.Inflation == nil {
			return fmt.Errorf("inflation parameters are required")
		}
		return validateCommon(sc.Inflation.Amount, sc.Inflation.AnnualRatePercent, sc.Inflation.Years)
	}
	return nil
}

func validateCommon(amount, rate decimal.Decimal, years int) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	if rate.IsNegative() {
		return fmt.Errorf("annual rate must not be negative")
	}
	if years <= 0 {
		return fmt.Errorf("horizon must be a positive number of years, got %d", years)
	}
	return nil
}
