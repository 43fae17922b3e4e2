package isodur

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	testCases := []struct {
		iso      string
		expected int64
		ok       bool
	}{
		{iso: "PT45M", expected: 45, ok: true},
		{iso: "PT1H25M", expected: 85, ok: true},
		{iso: "PT2H", expected: 120, ok: true},
		{iso: "P1D", expected: 1440, ok: true},
		{iso: "P1DT2H30M", expected: 1590, ok: true},
		{iso: "PT30S", expected: 0, ok: false},
		{iso: "PT0M", expected: 0, ok: false},
		{iso: "", expected: 0, ok: false},
		{iso: "  ", expected: 0, ok: false},
		{iso: "45 minutes", expected: 0, ok: false},
		{iso: "PTXM", expected: 0, ok: false},
	}

	for _, c := range testCases {
		minutes, ok := Minutes(c.iso)
		require.Equal(t, c.ok, ok, "input: %q", c.iso)
		require.Equal(t, c.expected, minutes, "input: %q", c.iso)
	}
}

func TestHumanReadable(t *testing.T) {
	testCases := []struct {
		iso      string
		expected string
	}{
		{iso: "PT1H25M", expected: "1 hour 25 minutes"},
		{iso: "PT2H", expected: "2 hours"},
		{iso: "PT1M", expected: "1 minute"},
		{iso: "PT45M", expected: "45 minutes"},
		{iso: "PT0M", expected: ""},
		{iso: "garbage", expected: ""},
	}

	for _, c := range testCases {
		require.Equal(t, c.expected, HumanReadable(c.iso), "input: %q", c.iso)
	}
}
