package domain

import (
	"fmt"
	"strings"
)

// Frequency identifies how many contribution periods occur per year.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

var periodsPerYear = map[Frequency]int{
	FrequencyDaily:     365,
	FrequencyWeekly:    52,
	FrequencyMonthly:   12,
	FrequencyQuarterly: 4,
	FrequencyYearly:    1,
}

// ParseFrequency converts a user-supplied string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := periodsPerYear[f]; !ok {
		return "", fmt.Errorf("unknown frequency %q (expected daily, weekly, monthly, quarterly or yearly)", s)
	}
	return f, nil
}

// PeriodsPerYear returns the number of contribution periods in one year.
func (f Frequency) PeriodsPerYear() int {
	return periodsPerYear[f]
}

// IsValid reports whether the frequency is one of the known variants.
func (f Frequency) IsValid() bool {
	_, ok := periodsPerYear[f]
	return ok
}

func (f Frequency) String() string {
	return string(f)
}

// UnmarshalYAML validates the frequency while decoding configuration files.
func (f *Frequency) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == "" {
		*f = FrequencyMonthly
		return nil
	}
	parsed, err := ParseFrequency(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
