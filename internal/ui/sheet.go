package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Sheet bundles palette + symbols + box borders as ready-to-render styles.
// A Sheet is never mutated after ParseSheet returns; surfaces share it by pointer.
type Sheet struct {
	Title, Text, Muted, Accent lipgloss.Style
	Success, Error, Pending    lipgloss.Style
	Frame                      lipgloss.Style

	BoxChecked, BoxUnchecked string
	SymDone, SymPending      string

	palette Palette
	border  string
}

// Palette is the raw color table a Sheet was built from.
type Palette struct {
	Title, Text, Muted, Accent string
	Success, Error, Pending    string
	Border, Background         string
}

// Palette returns the colors the sheet was parsed from. Unset entries are "".
func (s *Sheet) Palette() Palette { return s.palette }

// BorderName returns the border style name ("rounded", "double", ...).
func (s *Sheet) BorderName() string { return s.border }

// ------- theme file layout -------

type sheetFile struct {
	Palette paletteFile `toml:"palette"`
	Symbols symbolsFile `toml:"symbols"`
	Border  borderFile  `toml:"border"`
}

type paletteFile struct {
	Title      string `toml:"title"`
	Text       string `toml:"text"`
	Muted      string `toml:"muted"`
	Accent     string `toml:"accent"`
	Success    string `toml:"success"`
	Error      string `toml:"error"`
	Pending    string `toml:"pending"`
	Border     string `toml:"border"`
	Background string `toml:"background"`
}

type symbolsFile struct {
	Done         string `toml:"done"`
	Pending      string `toml:"pending"`
	BoxChecked   string `toml:"box_checked"`
	BoxUnchecked string `toml:"box_unchecked"`
}

type borderFile struct {
	Style string `toml:"style"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var borders = map[string]func() lipgloss.Border{
	"normal":  lipgloss.NormalBorder,
	"rounded": lipgloss.RoundedBorder,
	"thick":   lipgloss.ThickBorder,
	"double":  lipgloss.DoubleBorder,
	"hidden":  lipgloss.HiddenBorder,
	"ascii":   lipgloss.ASCIIBorder,
}

// ParseSheet decodes a TOML theme file into a Sheet.
// Syntax errors, unknown keys, bad colors and unknown border names all fail.
func ParseSheet(data []byte) (*Sheet, error) {
	var f sheetFile
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, 0, len(und))
		for _, k := range und {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	p := Palette{
		Title: f.Palette.Title, Text: f.Palette.Text, Muted: f.Palette.Muted,
		Accent: f.Palette.Accent, Success: f.Palette.Success, Error: f.Palette.Error,
		Pending: f.Palette.Pending, Border: f.Palette.Border, Background: f.Palette.Background,
	}
	for _, c := range []struct{ key, val string }{
		{"title", p.Title}, {"text", p.Text}, {"muted", p.Muted},
		{"accent", p.Accent}, {"success", p.Success}, {"error", p.Error},
		{"pending", p.Pending}, {"border", p.Border}, {"background", p.Background},
	} {
		if !validColor(c.val) {
			return nil, fmt.Errorf("palette.%s: invalid color %q", c.key, c.val)
		}
	}

	borderName := strings.ToLower(strings.TrimSpace(f.Border.Style))
	if borderName == "" {
		borderName = "rounded"
	}
	mkBorder, ok := borders[borderName]
	if !ok {
		return nil, fmt.Errorf("border.style: unknown style %q", f.Border.Style)
	}

	s := &Sheet{
		Title:   fg(lipgloss.NewStyle().Bold(true), p.Title),
		Text:    fg(lipgloss.NewStyle(), p.Text),
		Muted:   fg(lipgloss.NewStyle().Faint(p.Muted == ""), p.Muted),
		Accent:  fg(lipgloss.NewStyle(), p.Accent),
		Success: fg(lipgloss.NewStyle(), p.Success),
		Error:   fg(lipgloss.NewStyle().Bold(true), p.Error),
		Pending: fg(lipgloss.NewStyle(), p.Pending),

		BoxChecked:   orDefault(f.Symbols.BoxChecked, "☑"),
		BoxUnchecked: orDefault(f.Symbols.BoxUnchecked, "☐"),
		SymDone:      orDefault(f.Symbols.Done, "✔"),
		SymPending:   orDefault(f.Symbols.Pending, "•"),

		palette: p,
		border:  borderName,
	}

	frame := lipgloss.NewStyle().Border(mkBorder()).Padding(0, 1)
	if p.Border != "" {
		frame = frame.BorderForeground(lipgloss.Color(p.Border))
	}
	if p.Background != "" {
		frame = frame.Background(lipgloss.Color(p.Background))
	}
	s.Frame = frame
	return s, nil
}

// validColor accepts "" (unset), "#rrggbb" or an ANSI index 0..255.
func validColor(c string) bool {
	if c == "" || hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}

func fg(st lipgloss.Style, c string) lipgloss.Style {
	if c == "" {
		return st
	}
	return st.Foreground(lipgloss.Color(c))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
