package output

import (
	"encoding/json"

	"github.com/wealthify/fincalc/internal/domain"
)

// JSONFormatter marshals the whole projection set for machine consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
