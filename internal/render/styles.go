package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBanner = lipgloss.Color("6") // cyan
	colorTitle  = lipgloss.Color("2") // green
	colorMeta   = lipgloss.Color("4") // blue
	colorBody   = lipgloss.Color("7") // white
	colorLink   = lipgloss.Color("5") // magenta
	colorNotice = lipgloss.Color("3") // yellow
)

type styles struct {
	banner lipgloss.Style
	title  lipgloss.Style
	meta   lipgloss.Style
	body   lipgloss.Style
	link   lipgloss.Style
	notice lipgloss.Style
	source lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	// Feed text is printed as is: no tab expansion.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return styles{
		banner: base.Foreground(colorBanner),
		title:  base.Foreground(colorTitle).Bold(true),
		meta:   base.Foreground(colorMeta),
		body:   base.Foreground(colorBody),
		link:   base.Foreground(colorLink),
		notice: base.Foreground(colorNotice),
		source: base.Foreground(colorTitle),
	}
}

// paint colours each line of text on its own. Rendering a multi-line block in
// one call would pad the shorter lines to the widest one.
func paint(s lipgloss.Style, text string) string {
	if !strings.Contains(text, "\n") {
		return s.Render(text)
	}
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = s.Render(p)
	}
	return strings.Join(parts, "\n")
}
