// Package isodur normalizes the ISO-8601 durations embedded in recipe
// metadata (ex. "PT1H25M") for storage and display.
package isodur

import (
	"fmt"
	"strings"

	"github.com/sosodev/duration"
)

// Minutes converts an ISO-8601 duration into whole minutes, summing the
// day, hour and minute components and discarding sub-minute precision.
// ok is false when the input is empty, unparseable, or sums to zero or
// less: a recipe that claims "PT0M" has no usable duration, it is not a
// zero-minute recipe.
func Minutes(iso string) (int64, bool) {
	if strings.TrimSpace(iso) == "" {
		return 0, false
	}
	d, err := duration.Parse(iso)
	if err != nil {
		return 0, false
	}

	total := int64(d.Days)*24*60 + int64(d.Hours)*60 + int64(d.Minutes)
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// HumanReadable renders the hour and minute components of an ISO-8601
// duration as a phrase like "1 hour 25 minutes". Days and seconds are not
// rendered. Returns "" for unparseable input.
func HumanReadable(iso string) string {
	d, err := duration.Parse(iso)
	if err != nil {
		return ""
	}

	var parts []string
	if d.Hours > 0 {
		parts = append(parts, pluralize(int64(d.Hours), "hour"))
	}
	if d.Minutes > 0 {
		parts = append(parts, pluralize(int64(d.Minutes), "minute"))
	}
	return strings.Join(parts, " ")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
