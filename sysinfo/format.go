// Package sysinfo - Formatting utilities
package sysinfo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// sizeUnits lists the units FormatSize steps through after bytes, together
// with the number of decimals each one is rounded to.
var sizeUnits = []struct {
	suffix string
	places int
}{
	{"KB", 0},
	{"MB", 1},
	{"GB", 2},
	{"TB", 2},
}

// sizeOverflow is returned by FormatSize for values past the TB range.
const sizeOverflow = "-"

// RoundHalfUp rounds v to the given number of decimal places, sending ties
// toward positive infinity. All size and date formatting goes through it so
// output does not depend on the platform's default rounding.
//
// Example: RoundHalfUp(1.25, 1) returns 1.3
func RoundHalfUp(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(v*p+0.5) / p
}

// FormatSize converts a byte count to a human-readable string.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - Whole bytes for values below 1000 (e.g., "999 B")
//   - Otherwise the value divided by 1024 until it drops below 1000, so a unit
//     never shows four integer digits. KB has no decimals, MB one, GB and TB
//     two; trailing zeros are dropped
//   - "-" if the value would need a unit past TB
//
// Example: FormatSize(1572864) returns "1.5 MB"
func FormatSize(bytes uint64) string {
	if bytes < 1000 {
		return strconv.FormatUint(bytes, 10) + " B"
	}

	v := float64(bytes)
	for _, u := range sizeUnits {
		v /= 1024
		if v < 1000 {
			return strconv.FormatFloat(RoundHalfUp(v, u.places), 'f', -1, 64) + " " + u.suffix
		}
	}
	return sizeOverflow
}

// iecSuffix maps the suffixes FormatSize emits to the binary suffixes
// understood by humanize.ParseBytes.
var iecSuffix = map[string]string{
	"B":  "B",
	"KB": "KiB",
	"MB": "MiB",
	"GB": "GiB",
	"TB": "TiB",
}

// ParseSize parses a string produced by FormatSize back into a byte count.
// Because FormatSize rounds, the result is only as precise as the printed
// value.
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == sizeOverflow {
		return 0, errors.New("size out of range")
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	suffix, ok := iecSuffix[strings.ToUpper(fields[1])]
	if !ok {
		return 0, fmt.Errorf("unknown size unit %q", fields[1])
	}
	n, err := humanize.ParseBytes(fields[0] + " " + suffix)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	return n, nil
}

// RelativeDate describes target relative to anchor in the coarsest unit
// that fits.
//
// Parameters:
//   - target: The instant being described
//   - anchor: The reference instant, usually the current time
//
// Returns:
//   - "Moments ago" / "In a moment" for gaps under 120 seconds
//   - "N mins ago" / "N mins from now" under 120 minutes
//   - "N hours ago" / "N hours from now" under 72 hours
//   - "N days ago" / "N days from now" beyond that
//
// Each step rounds the value of the previous step.
//
// Example: a target five minutes before anchor returns "5 mins ago"
func RelativeDate(target, anchor time.Time) string {
	gap := anchor.Sub(target)
	future := gap < 0
	if future {
		gap = -gap
	}

	pick := func(past, ahead string) string {
		if future {
			return ahead
		}
		return past
	}

	secs := RoundHalfUp(float64(gap.Milliseconds())/1000, 0)
	if secs < 120 {
		return pick("Moments ago", "In a moment")
	}
	mins := RoundHalfUp(secs/60, 0)
	if mins < 120 {
		return relativePhrase(mins, "mins", future)
	}
	hours := RoundHalfUp(mins/60, 0)
	if hours < 72 {
		return relativePhrase(hours, "hours", future)
	}
	days := RoundHalfUp(hours/24, 0)
	return relativePhrase(days, "days", future)
}

func relativePhrase(n float64, unit string, future bool) string {
	if future {
		return fmt.Sprintf("%d %s from now", int64(n), unit)
	}
	return fmt.Sprintf("%d %s ago", int64(n), unit)
}

// Since is RelativeDate anchored at the current time.
func Since(target time.Time) string {
	return RelativeDate(target, time.Now())
}

// FormatUptime renders how long the host has been up at now, e.g. "3 hours"
// or "12 days".
func FormatUptime(uptime time.Duration, now time.Time) string {
	return strings.TrimSuffix(RelativeDate(now.Add(-uptime), now), " ago")
}
