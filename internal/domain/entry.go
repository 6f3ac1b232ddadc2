package domain

// YearlyEntry is one row of a projection schedule. Year is the 1-based index
// into the projection; Label is the calendar year (base year + index - 1).
// Monetary fields are whole currency units, rounded once at the reporting
// point; which fields are populated depends on the calculator.
type YearlyEntry struct {
	Year      int   `json:"year" yaml:"year"`
	Label     int   `json:"label" yaml:"label"`
	Invested  int64 `json:"invested,omitempty" yaml:"invested,omitempty"`
	Value     int64 `json:"value,omitempty" yaml:"value,omitempty"`
	Withdrawn int64 `json:"withdrawn,omitempty" yaml:"withdrawn,omitempty"`
	Balance   int64 `json:"balance,omitempty" yaml:"balance,omitempty"`
}

// AmortizationEntry is one year of a loan amortization schedule, aggregating
// twelve monthly payments into their principal and interest components.
type AmortizationEntry struct {
	Year      int   `json:"year" yaml:"year"`
	Label     int   `json:"label" yaml:"label"`
	Principal int64 `json:"principal" yaml:"principal"`
	Interest  int64 `json:"interest" yaml:"interest"`
	Balance   int64 `json:"balance" yaml:"balance"`
}
