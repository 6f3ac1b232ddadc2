package calculation

import (
	"fmt"

	"github.com/wealthify/fincalc/internal/domain"
)

// CalculationEngine runs the scenarios of a configuration through their
// calculators. The engine itself is stateless between runs; it exists to
// centralize dispatch, base-year defaulting and logging.
type CalculationEngine struct {
	logger Logger
	Debug  bool
}

// NewCalculationEngine creates an engine with a nop logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{logger: nopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger restores the nop default.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	ce.logger = l
}

// RunScenarios computes every scenario in the configuration. A scenario
// failure aborts the whole run; no partial results are returned.
func (ce *CalculationEngine) RunScenarios(cfg *domain.Configuration) (*domain.ProjectionSet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is required", ErrInvalidArgument)
	}
	if cfg.BaseYear <= 0 {
		return nil, fmt.Errorf("%w: base year must be positive, got %d", ErrInvalidArgument, cfg.BaseYear)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios provided", ErrInvalidArgument)
	}

	set := &domain.ProjectionSet{
		BaseYear: cfg.BaseYear,
		Results:  make([]domain.ScenarioResult, 0, len(cfg.Scenarios)),
	}
	for i := range cfg.Scenarios {
		sc := &cfg.Scenarios[i]
		ce.logger.Debugf("running scenario %q (%s)", sc.Name, sc.Calculator)
		result, err := ce.RunScenario(cfg.BaseYear, sc)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		set.Results = append(set.Results, *result)
	}
	return set, nil
}

// RunScenario computes a single scenario, defaulting the input's base year to
// the supplied one when unset.
func (ce *CalculationEngine) RunScenario(baseYear int, sc *domain.Scenario) (*domain.ScenarioResult, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: scenario is required", ErrInvalidArgument)
	}

	result := &domain.ScenarioResult{Name: sc.Name, Calculator: sc.Calculator}
	var err error

	switch sc.Calculator {
	case domain.CalculatorSIP:
		if sc.SIP == nil {
			return nil, fmt.Errorf("%w: sip parameters are required", ErrInvalidArgument)
		}
		in := *sc.SIP
		if in.BaseYear == 0 {
			in.BaseYear = baseYear
		}
		result.SIP, err = ComputeSIP(in)
	case domain.CalculatorSWP:
		if sc.SWP == nil {
			return nil, fmt.Errorf("%w: swp parameters are required", ErrInvalidArgument)
		}
		in := *sc.SWP
		if in.BaseYear == 0 {
			in.BaseYear = baseYear
		}
		result.SWP, err = ComputeSWP(in)
	case domain.CalculatorEMI:
		if sc.EMI == nil {
			return nil, fmt.Errorf("%w: emi parameters are required", ErrInvalidArgument)
		}
		in := *sc.EMI
		if in.BaseYear == 0 {
			in.BaseYear = baseYear
		}
		result.EMI, err = ComputeEMI(in)
	case domain.CalculatorLumpsum:
		if sc.Lumpsum == nil {
			return nil, fmt.Errorf("%w: lumpsum parameters are required", ErrInvalidArgument)
		}
		in := *sc.Lumpsum
		if in.BaseYear == 0 {
			in.BaseYear = baseYear
		}
		result.Lumpsum, err = ComputeLumpsum(in)
	case domain.CalculatorTopUp:
		if sc.TopUp == nil {
			return nil, fmt.Errorf("%w: topup parameters are required", ErrInvalidArgument)
		}
		in := *sc.TopUp
		if in.BaseYear == 0 {
			in.BaseYear = baseYear
		}
		result.TopUp, err = ComputeSIPTopUp(in)
	case domain.CalculatorInflation:
		if sc.Inflation == nil {
			return nil, fmt.Errorf("%w: inflation parameters are required", ErrInvalidArgument)
		}
		in := *sc.Inflation
		if in.BaseYear == 0 {
			in.BaseYear = baseYear
		}
		result.Inflation, err = ComputeInflation(in)
	default:
		return nil, fmt.Errorf("%w: unknown calculator %q", ErrInvalidArgument, sc.Calculator)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}
