// Package render turns a sysinfo snapshot into aligned, color-coded
// terminal lines with usage bars.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hoststat/config"
	"hoststat/sysinfo"
)

// sizeColumn is the width of the used and total size columns.
const sizeColumn = 10

// Printer writes reports to an output.
type Printer struct {
	w      io.Writer
	cfg    *config.Config
	styles Styles
	err    error
}

// NewPrinter returns a Printer writing to w. Colors are emitted only when
// w is a terminal that supports them.
func NewPrinter(w io.Writer, cfg *config.Config) *Printer {
	return &Printer{
		w:      w,
		cfg:    cfg,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// Print writes one labeled line per metric:
//
//	System date and time:    2024-06-01 12:00:00
//	System uptime:           3 days
//	Memory usage:                6 GB [|||||||||||||||||||||||       ] 8 GB
//	Usage of /:                 60 GB [||||||||||||||||||            ] 100 GB
//	Addresses of eth0:       192.168.1.20
//	Public IP:               203.0.113.7
//
// With Separate set, blank lines frame the time, storage and network
// sections. It returns the first write error.
func (p *Printer) Print(info *sysinfo.SystemInfo) error {
	st := p.styles

	p.separator()
	p.line("System date and time:", st.DateTime.Render(FormatTime(info.Now, p.cfg.DateTimeFormat)))
	p.line("System uptime:", st.Uptime.Render(sysinfo.FormatUptime(info.Uptime, info.Now)))
	p.separator()

	p.usage("Memory usage:", info.Memory.Used(), info.Memory.Total)
	for _, d := range info.Disks {
		p.usage(fmt.Sprintf("Usage of %s:", d.Path), d.Used(), d.Total)
	}
	p.separator()

	for _, iface := range info.Interfaces {
		p.line(fmt.Sprintf("Addresses of %s:", iface.Name), st.Address.Render(strings.Join(iface.Addresses, ", ")))
	}
	if !p.cfg.NoPublicIP {
		p.line("Public IP:", st.Address.Render(info.PublicIP))
	}
	p.separator()

	return p.err
}

// usage prints a "used [bar] total" line.
func (p *Printer) usage(label string, used, total uint64) {
	st := p.styles
	gauge := NewGauge(0, float64(total), float64(used), p.cfg.BarLength)
	p.line(label,
		st.Size.Render(padStart(sysinfo.FormatSize(used), sizeColumn)),
		gauge.Render(st),
		st.Size.Render(padEnd(sysinfo.FormatSize(total), sizeColumn)),
	)
}

// line prints the padded label followed by the values, space separated.
func (p *Printer) line(label string, values ...string) {
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, p.styles.Label.Render(padEnd(label, p.cfg.Padding)))
	parts = append(parts, values...)
	p.println(strings.Join(parts, " "))
}

func (p *Printer) separator() {
	if p.cfg.Separate {
		p.println("")
	}
}

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
