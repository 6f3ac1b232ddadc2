package compare

import "encoding/json"

// FormatJSON renders the comparison set as indented JSON.
func FormatJSON(cs *ComparisonSet) ([]byte, error) {
	return json.MarshalIndent(cs, "", "  ")
}
