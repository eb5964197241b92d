package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileExt is the extension a file needs to be picked up as a theme.
const FileExt = ".toml"

// themeFiles lists the theme files directly inside dir, in lexical order.
// A bare ".toml" has no name to select or save and is not listed.
func themeFiles(dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("themes dir: empty path: %w", ErrInvalidArgument)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("themes dir %s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), FileExt) || nameFromPath(e.Name()) == "" {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

// LoadDir parses every theme file in dir and fails on the first bad one.
// Nothing is returned on failure.
func LoadDir(dir string) (*Registry, error) {
	files, err := themeFiles(dir)
	if err != nil {
		return nil, err
	}
	themes := make([]*Theme, 0, len(files))
	for _, f := range files {
		t, err := Load(f)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return NewRegistry(themes...), nil
}

// TryLoadDir loads whatever parses in dir and skips the rest. It reports
// false only when dir itself is unusable; an empty registry is a valid result.
// Skips are logged at debug level.
func TryLoadDir(dir string, opts ...Option) (*Registry, bool) {
	log := buildOptions(opts).log
	files, err := themeFiles(dir)
	if err != nil {
		log.Debug("themes dir unavailable", slog.String("dir", dir), slog.Any("err", err))
		return nil, false
	}
	reg := NewRegistry()
	for _, f := range files {
		t, err := Load(f)
		if err != nil {
			log.Debug("skipping theme file", slog.String("path", f), slog.Any("err", err))
			continue
		}
		_ = reg.Add(t)
	}
	return reg, true
}

// LoadDirSafe is TryLoadDir that never comes back empty: when nothing usable
// is found the registry holds exactly Light and Dark.
func LoadDirSafe(dir string, opts ...Option) *Registry {
	reg, ok := TryLoadDir(dir, opts...)
	if !ok || reg.Len() == 0 {
		buildOptions(opts).log.Info("using built-in themes", slog.String("dir", dir))
		return NewRegistry(Defaults()...)
	}
	return reg
}
