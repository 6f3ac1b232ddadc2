package compare

import (
	"fmt"

	"github.com/wealthify/fincalc/internal/domain"
)

// BuildComparison reduces a projection set to comparison metrics against a
// base scenario. An empty baseName selects the first scenario.
func BuildComparison(set *domain.ProjectionSet, baseName string) (*ComparisonSet, error) {
	if set == nil || len(set.Results) == 0 {
		return nil, fmt.Errorf("no results to compare")
	}

	baseIndex := 0
	if baseName != "" {
		baseIndex = -1
		for i := range set.Results {
			if set.Results[i].Name == baseName {
				baseIndex = i
				break
			}
		}
		if baseIndex < 0 {
			return nil, fmt.Errorf("base scenario %q not found", baseName)
		}
	}

	mc := NewMetricsCalculator()
	base := mc.CalculateMetrics(&set.Results[baseIndex])

	cs := &ComparisonSet{
		BaseScenarioName:   base.ScenarioName,
		BaseResult:         &base,
		AlternativeResults: make([]ComparisonResult, 0, len(set.Results)-1),
	}
	for i := range set.Results {
		if i == baseIndex {
			continue
		}
		alt := mc.CalculateMetrics(&set.Results[i])
		cs.AlternativeResults = append(cs.AlternativeResults, mc.CalculateComparison(alt, base))
	}
	cs.Recommendations = GenerateRecommendations(cs)
	return cs, nil
}
