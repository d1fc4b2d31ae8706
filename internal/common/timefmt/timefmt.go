package timefmt

import (
	"fmt"
	"time"
)

const (
	// DisplayLayout is the timestamp format shown to users: DD/MM/YYYY, HH:MM:SS
	// with a zero-padded 24-hour clock.
	DisplayLayout = "02/01/2006, 15:04:05"

	// WireLayout is the ISO 8601 UTC form used when talking to the record store.
	WireLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Display formats a time in the display layout.
func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseDisplay parses a display-format timestamp. The string is interpreted
// in local time, matching how Display produced it.
func ParseDisplay(display string) (time.Time, error) {
	t, err := time.ParseInLocation(DisplayLayout, display, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid display timestamp %q: %w", display, err)
	}
	return t, nil
}

// ToWire converts a display-format timestamp to the wire format.
func ToWire(display string) (string, error) {
	t, err := ParseDisplay(display)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(WireLayout), nil
}

// FromWire converts a wire-format timestamp back to the display format.
func FromWire(wire string) (string, error) {
	t, err := time.Parse(WireLayout, wire)
	if err != nil {
		return "", fmt.Errorf("invalid wire timestamp %q: %w", wire, err)
	}
	return t.In(time.Local).Format(DisplayLayout), nil
}
