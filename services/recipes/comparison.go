package recipes

import "fmt"

// Comparison selects the operator applied to totalTimeMinutes in
// SearchByTotalTime.
type Comparison string

const (
	Less    Comparison = "<"
	AtMost  Comparison = "<="
	Greater Comparison = ">"
	AtLeast Comparison = ">="
)

func ParseComparison(s string) (Comparison, error) {
	switch Comparison(s) {
	case Less, AtMost, Greater, AtLeast:
		return Comparison(s), nil
	}
	return "", fmt.Errorf("unknown comparison %q, expected one of <, <=, >, >=", s)
}
