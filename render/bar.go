package render

import (
	"math"
	"strings"
)

// Tier is the severity band of a usage ratio.
type Tier int

const (
	// TierNormal covers usage up to 60%
	TierNormal Tier = iota
	// TierElevated covers usage above 60% up to 80%
	TierElevated
	// TierHigh covers usage above 80% up to 95%
	TierHigh
	// TierCritical covers usage above 95%
	TierCritical

	tierCount = 4
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierElevated:
		return "elevated"
	case TierHigh:
		return "high"
	case TierCritical:
		return "critical"
	}
	return "unknown"
}

// TierFor returns the severity band for percent, a ratio in [0, 1].
func TierFor(percent float64) Tier {
	switch {
	case percent > 0.95:
		return TierCritical
	case percent > 0.8:
		return TierHigh
	case percent > 0.6:
		return TierElevated
	default:
		return TierNormal
	}
}

// Gauge is a fixed-width usage bar.
type Gauge struct {
	Percent float64
	Filled  int
	Empty   int
	Tier    Tier
}

// NewGauge places value on a range and sizes a bar for it.
//
// Parameters:
//   - min, max: The bounds of the range
//   - value: The reading to place on the range
//   - width: Number of cells in the bar; negative widths count as 0
//
// Returns:
//   - A Gauge with floor(width * percent) filled cells and the tier for percent
//
// The ratio is clamped to [0, 1], so out-of-range values show as an empty
// or a full bar. An empty or inverted range yields an empty bar.
//
// Example: NewGauge(0, 100, 50, 30) has 15 filled and 15 empty cells
func NewGauge(min, max, value float64, width int) Gauge {
	if width < 0 {
		width = 0
	}

	percent := 0.0
	if span := max - min; span > 0 {
		percent = (value - min) / span
	}
	switch {
	case math.IsNaN(percent), percent < 0:
		percent = 0
	case percent > 1:
		percent = 1
	}

	filled := int(math.Floor(float64(width) * percent))
	return Gauge{
		Percent: percent,
		Filled:  filled,
		Empty:   width - filled,
		Tier:    TierFor(percent),
	}
}

// Render draws the gauge as "[|||   ]", the fill colored by tier.
func (g Gauge) Render(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Bracket.Render("["))
	if g.Filled > 0 {
		b.WriteString(st.Tiers[g.Tier].Render(strings.Repeat("|", g.Filled)))
	}
	b.WriteString(strings.Repeat(" ", g.Empty))
	b.WriteString(st.Bracket.Render("]"))
	return b.String()
}
