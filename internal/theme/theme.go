// Package theme owns the set of known themes, the active selection and the
// surfaces that follow it.
//
// Everything here runs on the UI goroutine: Registry, Selector and Binder do
// no locking. Callers that touch them from several goroutines must serialize
// access themselves (for Bubble Tea programs, only from Update).
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Makepad-fr/tint/internal/ui"
)

// Names of the two themes that ship with the binary.
const (
	LightName = "Light"
	DarkName  = "Dark"
)

// Theme pairs a name with a parsed style sheet. Themes are compared by
// identity; two themes may share a name.
type Theme struct {
	name  string
	style *ui.Sheet
}

// New builds a theme from an already parsed sheet.
func New(name string, style *ui.Sheet) (*Theme, error) {
	if style == nil {
		return nil, fmt.Errorf("theme %q: nil style: %w", name, ErrInvalidArgument)
	}
	return &Theme{name: name, style: style}, nil
}

func (t *Theme) Name() string { return t.name }

// Style returns the sheet applied to surfaces while this theme is selected.
func (t *Theme) Style() *ui.Sheet { return t.style }

func (t *Theme) String() string { return t.name }

// DefaultLight returns a fresh Light theme backed by the embedded sheet.
func DefaultLight() *Theme {
	return &Theme{name: LightName, style: ui.MustBuiltin(ui.BuiltinLight)}
}

// DefaultDark returns a fresh Dark theme backed by the embedded sheet.
func DefaultDark() *Theme {
	return &Theme{name: DarkName, style: ui.MustBuiltin(ui.BuiltinDark)}
}

// Defaults returns Light and Dark, in that order.
func Defaults() []*Theme { return []*Theme{DefaultLight(), DefaultDark()} }

// Load reads a theme file. The theme is named after the file without its
// extension, spaces included. A missing path (or a directory) yields
// ErrNotFound, a file with no base name (".toml") ErrInvalidArgument and a
// bad sheet a *ParseError.
func Load(path string) (*Theme, error) {
	name := nameFromPath(path)
	if name == "" {
		return nil, fmt.Errorf("theme file %s: empty name: %w", path, ErrInvalidArgument)
	}
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("theme file %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("theme file %s is a directory: %w", path, ErrNotFound)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	sheet, err := ui.ParseSheet(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Theme{name: name, style: sheet}, nil
}

// TryLoad is Load without the error: any failure yields (nil, false).
func TryLoad(path string) (*Theme, bool) {
	t, err := Load(path)
	if err != nil {
		return nil, false
	}
	return t, true
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
