package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var plainFrame = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)

// ProgressBar renders a Unicode progress bar with percentage, filled part in
// the sheet's accent. A nil sheet renders unstyled.
func ProgressBar(s *Sheet, done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	on, off := strings.Repeat("█", filled), strings.Repeat("░", width-filled)
	if s != nil {
		on, off = s.Accent.Render(on), s.Muted.Render(off)
	}
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s%s %3d%%", on, off, pct)
}

// Panel draws a framed box using s, or a plain frame when s is nil.
func Panel(s *Sheet, lines []string) string {
	frame := plainFrame
	if s != nil {
		frame = s.Frame
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// Swatches lists each palette entry next to a block in its color.
func Swatches(s *Sheet) []string {
	p := s.Palette()
	entries := []struct {
		name, color string
		st          lipgloss.Style
	}{
		{"title", p.Title, s.Title},
		{"text", p.Text, s.Text},
		{"muted", p.Muted, s.Muted},
		{"accent", p.Accent, s.Accent},
		{"success", p.Success, s.Success},
		{"error", p.Error, s.Error},
		{"pending", p.Pending, s.Pending},
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		c := e.color
		if c == "" {
			c = "-"
		}
		out = append(out, fmt.Sprintf("%-8s %s %s", e.name, e.st.Render("████"), c))
	}
	return out
}
