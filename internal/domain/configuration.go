package domain

// CalculatorKind identifies which projection a scenario runs.
type CalculatorKind string

const (
	CalculatorSIP       CalculatorKind = "sip"
	CalculatorSWP       CalculatorKind = "swp"
	CalculatorEMI       CalculatorKind = "emi"
	CalculatorLumpsum   CalculatorKind = "lumpsum"
	CalculatorTopUp     CalculatorKind = "topup"
	CalculatorInflation CalculatorKind = "inflation"
)

// KnownCalculators lists every supported calculator kind.
var KnownCalculators = []CalculatorKind{
	CalculatorSIP,
	CalculatorSWP,
	CalculatorEMI,
	CalculatorLumpsum,
	CalculatorTopUp,
	CalculatorInflation,
}

// IsValid reports whether the kind names a supported calculator.
func (k CalculatorKind) IsValid() bool {
	for _, known := range KnownCalculators {
		if k == known {
			return true
		}
	}
	return false
}

// Scenario is one named calculator run within a configuration file. Exactly
// one parameter block, matching Calculator, must be set.
type Scenario struct {
	Name       string          `json:"name" yaml:"name"`
	Calculator CalculatorKind  `json:"calculator" yaml:"calculator"`
	SIP        *SIPInput       `json:"sip,omitempty" yaml:"sip,omitempty"`
	SWP        *SWPInput       `json:"swp,omitempty" yaml:"swp,omitempty"`
	EMI        *EMIInput       `json:"emi,omitempty" yaml:"emi,omitempty"`
	Lumpsum    *LumpsumInput   `json:"lumpsum,omitempty" yaml:"lumpsum,omitempty"`
	TopUp      *TopUpInput     `json:"topup,omitempty" yaml:"topup,omitempty"`
	Inflation  *InflationInput `json:"inflation,omitempty" yaml:"inflation,omitempty"`
}

// Configuration is a batch of projection scenarios sharing a base year for
// calendar labels. BaseYear is supplied by the caller; the engine never reads
// the wall clock.
type Configuration struct {
	BaseYear  int        `json:"baseYear" yaml:"baseYear"`
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// ScenarioResult pairs a scenario with the result of its calculator. Exactly
// one result pointer is non-nil, matching Calculator.
type ScenarioResult struct {
	Name       string           `json:"name" yaml:"name"`
	Calculator CalculatorKind   `json:"calculator" yaml:"calculator"`
	SIP        *SIPResult       `json:"sip,omitempty" yaml:"sip,omitempty"`
	SWP        *SWPResult       `json:"swp,omitempty" yaml:"swp,omitempty"`
	EMI        *EMIResult       `json:"emi,omitempty" yaml:"emi,omitempty"`
	Lumpsum    *LumpsumResult   `json:"lumpsum,omitempty" yaml:"lumpsum,omitempty"`
	TopUp      *SIPResult       `json:"topup,omitempty" yaml:"topup,omitempty"`
	Inflation  *InflationResult `json:"inflation,omitempty" yaml:"inflation,omitempty"`
}

// ProjectionSet is the engine output for a full configuration run.
type ProjectionSet struct {
	BaseYear int              `json:"baseYear" yaml:"baseYear"`
	Results  []ScenarioResult `json:"results" yaml:"results"`
}
