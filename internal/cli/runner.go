package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tint/internal/theme"
	"github.com/Makepad-fr/tint/internal/tui"
	"github.com/Makepad-fr/tint/internal/ui"
	"github.com/Makepad-fr/tint/internal/window"
)

// Options tune behavior from config and root flags.
type Options struct {
	ThemesDir    string
	StatePath    string
	DefaultTheme string
	Color        string // auto, always or never
	LogLevel     string
	LogFile      string

	Stdout, Stderr io.Writer
}

func (o *Options) fill() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.DefaultTheme == "" {
		o.DefaultTheme = theme.LightName
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.fill()
	if len(args) == 0 {
		PrintHelp(opt.Stdout)
		return 2
	}
	cmd, a := args[0], args[1:]

	closeLog, err := setupLogging(opt, cmd == "tui")
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	color := strings.ToLower(strings.TrimSpace(opt.Color))
	switch color {
	case "", "auto", "always", "never":
	default:
		ui.Fail(opt.Stderr, fmt.Sprintf("color: want auto, always or never, got %q", opt.Color))
		return 2
	}
	ui.SetColorForcing(color == "always", color == "never")

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ls":
		return doList(opt)

	case "current":
		return doCurrent(opt)

	case "use":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: tint use <name...>")
			return 2
		}
		return doUse(opt, strings.Join(a, " "))

	case "show":
		return doShow(opt, strings.Join(a, " "))

	case "check":
		if len(a) > 1 {
			ui.Fail(opt.Stderr, "usage: tint check [dir]")
			return 2
		}
		dir := opt.ThemesDir
		if len(a) == 1 {
			dir = a[0]
		}
		return doCheck(opt, dir)

	case "tui":
		return doTUI(opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tint - pick and apply terminal themes

Usage:
  tint [flags] <subcommand> [args]

Subcommands:
  ls                 List themes, marking the active one
  current            Print the active theme name
  use <name...>      Select a theme by name and remember it
  show [name...]     Preview a theme's palette (default: active theme)
  check [dir]        Validate every theme file in dir (default: themes dir)
  tui                Interactive switcher with live preview panes

Flags:
  -themes <dir>      Themes directory
  -state <file>      Where the selected theme is remembered
  -color <mode>      auto, always or never

Examples:
  tint ls
  tint use Dark
  tint show Solarized
  tint check ~/.config/tint/themes
`)
}

// setupLogging installs the default slog logger. The TUI owns the terminal,
// so its logs go to the log file or nowhere.
func setupLogging(opt Options, interactive bool) (func(), error) {
	var level slog.Level
	if opt.LogLevel != "" {
		if err := level.UnmarshalText([]byte(opt.LogLevel)); err != nil {
			return nil, err
		}
	}

	var (
		w       io.Writer = opt.Stderr
		closeFn           = func() {}
	)
	switch {
	case interactive && opt.LogFile != "":
		f, err := tea.LogToFile(opt.LogFile, "tint")
		if err != nil {
			return nil, err
		}
		w, closeFn = f, func() { _ = f.Close() }
	case interactive:
		w = io.Discard
	case opt.LogFile != "":
		f, err := os.OpenFile(opt.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// -------------- session ----------------

type session struct {
	sel    *theme.Selector
	binder *theme.Binder
}

// openSession loads the themes and restores the remembered choice, falling
// back to the configured default and then to the first theme.
func openSession(opt Options) *session {
	reg := theme.LoadDirSafe(opt.ThemesDir)
	sel := theme.NewSelector(reg)
	b := theme.NewBinder(sel)
	if t := theme.RestoreSelection(opt.StatePath, reg); t != nil {
		_ = sel.Set(t)
	} else {
		sel.SelectFallback(opt.DefaultTheme)
	}
	slog.Debug("session ready",
		slog.String("dir", opt.ThemesDir),
		slog.Int("themes", reg.Len()),
		slog.String("selected", sel.Selected().Name()))
	return &session{sel: sel, binder: b}
}

func (s *session) close() { s.binder.Close() }

// -------------- subcommand impls ----------------

func doList(opt Options) int {
	s := openSession(opt)
	defer s.close()

	w := window.New("Themes")
	// w is non-nil
	_ = s.binder.Enable(w)
	w.Show()
	defer w.Close()

	sheet := w.Styles().Head()
	reg := s.sel.Registry()
	lines := []string{
		fmt.Sprintf("%s %d  %s %s",
			sheet.Accent.Render("Total"), reg.Len(),
			sheet.Success.Render(sheet.SymDone), s.sel.Selected().Name()),
		"",
	}
	for i, t := range reg.Themes() {
		box, name := sheet.Muted.Render(sheet.BoxUnchecked), sheet.Text.Render(t.Name())
		if t == s.sel.Selected() {
			box, name = sheet.Success.Render(sheet.BoxChecked), sheet.Title.Render(t.Name())
		}
		lines = append(lines, fmt.Sprintf("%2d. %s %s", i+1, box, name))
	}
	lines = append(lines, "", sheet.Muted.Render("Tip: switch with `tint use <name>`"))

	fmt.Fprintln(opt.Stdout, w.View(strings.Join(lines, "\n"), 0, false))
	return 0
}

func doCurrent(opt Options) int {
	s := openSession(opt)
	defer s.close()
	fmt.Fprintln(opt.Stdout, s.sel.Selected().Name())
	return 0
}

func doUse(opt Options, name string) int {
	s := openSession(opt)
	defer s.close()

	if !s.sel.SelectByName(name) {
		ui.Fail(opt.Stderr, fmt.Sprintf("no theme named %q", name))
		fmt.Fprintln(opt.Stderr, "Available: "+strings.Join(s.sel.Registry().Names(), ", "))
		return 1
	}
	theme.SaveSelection(opt.StatePath, s.sel.Selected())
	ui.OK(opt.Stdout, "using "+name)
	return 0
}

func doShow(opt Options, name string) int {
	s := openSession(opt)
	defer s.close()

	t := s.sel.Selected()
	if name != "" {
		var ok bool
		if t, ok = s.sel.Registry().Find(name); !ok {
			ui.Fail(opt.Stderr, fmt.Sprintf("no theme named %q", name))
			return 1
		}
	}
	sh := t.Style()

	lines := []string{sh.Title.Render(t.Name()), ""}
	lines = append(lines, ui.Swatches(sh)...)
	lines = append(lines, "",
		fmt.Sprintf("border   %s", sh.BorderName()),
		fmt.Sprintf("symbols  %s %s  %s %s", sh.BoxChecked, sh.BoxUnchecked, sh.SymDone, sh.SymPending),
		"",
		ui.ProgressBar(sh, 2, 3, 24),
	)
	fmt.Fprintln(opt.Stdout, ui.Panel(sh, lines))
	return 0
}

func doCheck(opt Options, dir string) int {
	reg, err := theme.LoadDir(dir)
	if err != nil {
		var pe *theme.ParseError
		switch {
		case errors.As(err, &pe):
			ui.Fail(opt.Stderr, fmt.Sprintf("%s: %v", pe.Path, pe.Err))
		case errors.Is(err, theme.ErrNotFound):
			ui.Fail(opt.Stderr, "no such directory: "+dir)
		default:
			ui.Fail(opt.Stderr, err.Error())
		}
		return 1
	}
	for _, n := range reg.Names() {
		fmt.Fprintln(opt.Stdout, "  "+n)
	}
	ui.OK(opt.Stdout, fmt.Sprintf("%d themes ok", reg.Len()))
	return 0
}

func doTUI(opt Options) int {
	s := openSession(opt)
	defer s.close()

	err := tui.Run(tui.Deps{
		Selector:     s.sel,
		Binder:       s.binder,
		ThemesDir:    opt.ThemesDir,
		StatePath:    opt.StatePath,
		DefaultTheme: opt.DefaultTheme,
	})
	if err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}
