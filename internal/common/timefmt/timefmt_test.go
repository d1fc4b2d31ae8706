package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	// Single-digit day, month, hour, minute and second to check zero padding
	ts := time.Date(2025, 3, 7, 9, 5, 2, 0, time.Local)
	assert.Equal(t, "07/03/2025, 09:05:02", Display(ts))
}

func TestParseDisplay(t *testing.T) {
	parsed, err := ParseDisplay("07/03/2025, 09:05:02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 7, 9, 5, 2, 0, time.Local), parsed)
}

func TestParseDisplayInvalid(t *testing.T) {
	invalid := []string{
		"",
		"2025-03-07 09:05:02",
		"7/3/2025, 9:05:02",
		"07/03/2025 09:05:02",
		"not a date",
	}

	for _, input := range invalid {
		_, err := ParseDisplay(input)
		assert.Error(t, err, "expected %q to be rejected", input)
	}
}

func TestToWire(t *testing.T) {
	wire, err := ToWire(Display(time.Date(2025, 3, 7, 9, 5, 2, 0, time.Local)))
	require.NoError(t, err)

	// The wire format is always UTC with millisecond precision
	parsed, err := time.Parse(WireLayout, wire)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.True(t, parsed.Equal(time.Date(2025, 3, 7, 9, 5, 2, 0, time.Local)))
}

func TestToWireInvalid(t *testing.T) {
	_, err := ToWire("31/02/2025, 12:00:00")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	displays := []string{
		"01/01/2024, 00:00:00",
		"29/08/2026, 10:30:00",
		"31/12/2025, 23:59:59",
		"07/03/2025, 09:05:02",
	}

	for _, display := range displays {
		wire, err := ToWire(display)
		require.NoError(t, err)

		back, err := FromWire(wire)
		require.NoError(t, err)
		assert.Equal(t, display, back)
	}
}

func TestFromWireInvalid(t *testing.T) {
	_, err := FromWire("07/03/2025, 09:05:02")
	assert.Error(t, err)
}
