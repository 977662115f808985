package render

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func plainStyles() Styles {
	return NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    Tier
	}{
		{0, TierNormal},
		{0.6, TierNormal},
		{0.61, TierElevated},
		{0.8, TierElevated},
		{0.81, TierHigh},
		{0.95, TierHigh},
		{0.951, TierCritical},
		{1, TierCritical},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TierFor(tc.percent), "TierFor(%v)", tc.percent)
	}
}

func TestNewGauge(t *testing.T) {
	tests := []struct {
		name                  string
		min, max, value       float64
		width                 int
		wantFilled, wantEmpty int
		wantTier              Tier
	}{
		{"half", 0, 100, 50, 30, 15, 15, TierNormal},
		{"full", 0, 100, 100, 30, 30, 0, TierCritical},
		{"floor", 0, 3, 2, 10, 6, 4, TierElevated},
		{"offset range", 50, 150, 140, 10, 9, 1, TierHigh},
		{"over max clamps", 0, 100, 250, 20, 20, 0, TierCritical},
		{"under min clamps", 10, 20, 0, 20, 0, 20, TierNormal},
		{"empty range", 5, 5, 5, 10, 0, 10, TierNormal},
		{"inverted range", 10, 0, 5, 10, 0, 10, TierNormal},
		{"negative width", 0, 100, 50, -4, 0, 0, TierNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGauge(tc.min, tc.max, tc.value, tc.width)
			assert.Equal(t, tc.wantFilled, g.Filled)
			assert.Equal(t, tc.wantEmpty, g.Empty)
			assert.Equal(t, tc.wantTier, g.Tier)
			assert.GreaterOrEqual(t, g.Percent, 0.0)
			assert.LessOrEqual(t, g.Percent, 1.0)
		})
	}
}

func TestGaugeRender(t *testing.T) {
	st := plainStyles()

	assert.Equal(t, "[|||||     ]", NewGauge(0, 100, 50, 10).Render(st))
	assert.Equal(t, "[    ]", NewGauge(0, 100, 0, 4).Render(st))
	assert.Equal(t, "[||||]", NewGauge(0, 100, 100, 4).Render(st))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "critical", TierCritical.String())
	assert.Equal(t, "unknown", Tier(9).String())
}
