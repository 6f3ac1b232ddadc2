package compare

import (
	"fmt"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// ComparisonResult represents a single scenario with its comparison metrics.
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Calculator   domain.CalculatorKind `json:"calculator"`

	// Key metrics, reduced to the shared invested/gain/total shape.
	Invested int64 `json:"invested"`
	Gain     int64 `json:"gain"`
	Total    int64 `json:"total"`
	Horizon  int   `json:"horizon"` // reported projection years

	// Comparison to base
	GainDiffFromBase    int64   `json:"gainDiffFromBase"`
	GainPctFromBase     float64 `json:"gainPctFromBase"`
	HorizonDiffFromBase int     `json:"horizonDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons.
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// MetricsCalculator extracts key metrics from scenario results.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes comparison metrics for a scenario result.
func (mc *MetricsCalculator) CalculateMetrics(sr *domain.ScenarioResult) ComparisonResult {
	invested, gain, total := sr.Totals()
	return ComparisonResult{
		ScenarioName: sr.Name,
		Calculator:   sr.Calculator,
		Invested:     invested,
		Gain:         gain,
		Total:        total,
		Horizon:      sr.Horizon(),
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.GainDiffFromBase = scenario.Gain - base.Gain
	if base.Gain != 0 {
		scenario.GainPctFromBase = float64(scenario.GainDiffFromBase) / float64(base.Gain) * 100
	}
	scenario.HorizonDiffFromBase = scenario.Horizon - base.Horizon
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results.
// Comparisons are only meaningful across scenarios of the same calculator; the
// caller is expected to group accordingly.
func GenerateRecommendations(cs *ComparisonSet) []string {
	recommendations := []string{}
	if cs.BaseResult == nil || len(cs.AlternativeResults) == 0 {
		return recommendations
	}

	bestGain := cs.BaseResult
	for i := range cs.AlternativeResults {
		if cs.AlternativeResults[i].Gain > bestGain.Gain {
			bestGain = &cs.AlternativeResults[i]
		}
	}
	if bestGain != cs.BaseResult {
		diff := bestGain.Gain - cs.BaseResult.Gain
		recommendations = append(recommendations,
			"Best Gain: "+bestGain.ScenarioName+" yields "+money.Format(diff)+
				" more than "+cs.BaseResult.ScenarioName)
	}

	bestMultiple := cs.BaseResult
	for i := range cs.AlternativeResults {
		if multiple(&cs.AlternativeResults[i]) > multiple(bestMultiple) {
			bestMultiple = &cs.AlternativeResults[i]
		}
	}
	if bestMultiple != cs.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Best Multiple: %s returns %.2fx of the amount put in",
				bestMultiple.ScenarioName, multiple(bestMultiple)))
	}

	return recommendations
}

func multiple(cr *ComparisonResult) float64 {
	if cr.Invested == 0 {
		return 0
	}
	return float64(cr.Total) / float64(cr.Invested)
}
