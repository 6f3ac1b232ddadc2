package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/wealthify/fincalc/internal/domain"
)

// Formatter renders a projection set into a byte payload.
type Formatter interface {
	Format(results *domain.ProjectionSet) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ProjectionSet) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ProjectionSet) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                   { return ff.ID }

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	JSONFormatter{},
	HTMLFormatter{},
	XLSXFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console",
	"csv-summary":  "csv",
	"csv-detailed": "detailed-csv",
	"excel":        "xlsx",
	"spreadsheet":  "xlsx",
}

// NormalizeFormatName resolves aliases and case differences.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliasMap[n]; ok {
		return alias
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// FormatNames lists the registered formatter names.
func FormatNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted runs a formatter and writes its output to the given path.
func WriteFormatted(f Formatter, results *domain.ProjectionSet, path string) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting %s output: %w", f.Name(), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s output: %w", f.Name(), err)
	}
	return nil
}
