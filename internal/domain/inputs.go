package domain

import "github.com/shopspring/decimal"

// SIPInput describes a systematic investment plan projection request.
type SIPInput struct {
	Contribution      decimal.Decimal `json:"contribution" yaml:"contribution"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annualRatePercent"`
	Years             int             `json:"years" yaml:"years"`
	Frequency         Frequency       `json:"frequency" yaml:"frequency"`
	BaseYear          int             `json:"baseYear,omitempty" yaml:"baseYear,omitempty"`
}

// SWPInput describes a systematic withdrawal plan projection request.
type SWPInput struct {
	InitialInvestment decimal.Decimal `json:"initialInvestment" yaml:"initialInvestment"`
	MonthlyWithdrawal decimal.Decimal `json:"monthlyWithdrawal" yaml:"monthlyWithdrawal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annualRatePercent"`
	Years             int             `json:"years" yaml:"years"`
	BaseYear          int             `json:"baseYear,omitempty" yaml:"baseYear,omitempty"`
}

// EMIInput describes an amortizing loan projection request.
type EMIInput struct {
	Principal         decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annualRatePercent"`
	TenureYears       int             `json:"tenureYears" yaml:"tenureYears"`
	BaseYear          int             `json:"baseYear,omitempty" yaml:"baseYear,omitempty"`
}

// LumpsumInput describes a single upfront investment projection request.
type LumpsumInput struct {
	Amount            decimal.Decimal `json:"amount" yaml:"amount"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annualRatePercent"`
	Years             int             `json:"years" yaml:"years"`
	BaseYear          int             `json:"baseYear,omitempty" yaml:"baseYear,omitempty"`
}

// TopUpInput describes a SIP whose contribution is stepped up once per year.
type TopUpInput struct {
	StartContribution     decimal.Decimal `json:"startContribution" yaml:"startContribution"`
	AnnualIncreasePercent decimal.Decimal `json:"annualIncreasePercent" yaml:"annualIncreasePercent"`
	AnnualRatePercent     decimal.Decimal `json:"annualRatePercent" yaml:"annualRatePercent"`
	Years                 int             `json:"years" yaml:"years"`
	Frequency             Frequency       `json:"frequency" yaml:"frequency"`
	BaseYear              int             `json:"baseYear,omitempty" yaml:"baseYear,omitempty"`
}

// InflationInput describes a purchasing-power erosion projection request.
type InflationInput struct {
	Amount            decimal.Decimal `json:"amount" yaml:"amount"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" yaml:"annualRatePercent"`
	Years             int             `json:"years" yaml:"years"`
	BaseYear          int             `json:"baseYear,omitempty" yaml:"baseYear,omitempty"`
}
