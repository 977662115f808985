package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color scheme, taken from the 16-color ANSI palette so output follows the
// user's terminal theme.
var (
	ColorRed           = lipgloss.Color("1")
	ColorCyan          = lipgloss.Color("6")
	ColorWhite         = lipgloss.Color("7")
	ColorBrightBlack   = lipgloss.Color("8")
	ColorBrightRed     = lipgloss.Color("9")
	ColorBrightGreen   = lipgloss.Color("10")
	ColorBrightYellow  = lipgloss.Color("11")
	ColorBrightMagenta = lipgloss.Color("13")
	ColorBrightCyan    = lipgloss.Color("14")
	ColorBrightWhite   = lipgloss.Color("15")
)

// Styles groups the styles used for one report.
type Styles struct {
	// Label is the metric name column
	Label lipgloss.Style

	// DateTime and Uptime color the time values
	DateTime lipgloss.Style
	Uptime   lipgloss.Style

	// Size colors the used/total columns
	Size lipgloss.Style

	// Address colors interface and public addresses
	Address lipgloss.Style

	// Bracket colors the frame around usage bars
	Bracket lipgloss.Style

	// Tiers colors the bar fill, indexed by Tier
	Tiers [tierCount]lipgloss.Style
}

// NewStyles builds the report styles for renderer r. The renderer decides
// whether colors are emitted at all, based on the output it was created for.
func NewStyles(r *lipgloss.Renderer) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}
	return Styles{
		Label:    fg(ColorBrightWhite),
		DateTime: fg(ColorBrightCyan),
		Uptime:   fg(ColorCyan),
		Size:     fg(ColorWhite),
		Address:  fg(ColorBrightMagenta),
		Bracket:  fg(ColorBrightBlack),
		Tiers: [tierCount]lipgloss.Style{
			TierNormal:   fg(ColorBrightGreen),
			TierElevated: fg(ColorBrightYellow),
			TierHigh:     fg(ColorBrightRed),
			TierCritical: fg(ColorRed),
		},
	}
}
