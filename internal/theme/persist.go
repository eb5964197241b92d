package theme

import (
	"log/slog"

	"github.com/Makepad-fr/tint/internal/store/namestore"
)

// SaveSelection records t's name at path. A nil theme writes nothing.
// Failures are logged and dropped: losing the preference must never stop
// the application.
func SaveSelection(path string, t *Theme, opts ...Option) {
	if t == nil || path == "" {
		return
	}
	if err := namestore.Write(path, t.name); err != nil {
		buildOptions(opts).log.Debug("save theme selection", slog.String("path", path), slog.Any("err", err))
	}
}

// RestoreSelection returns the first theme in reg named by the file at path,
// or nil when the file is missing, unreadable or names an unknown theme.
// It does not change any selection.
func RestoreSelection(path string, reg *Registry, opts ...Option) *Theme {
	if path == "" || reg == nil {
		return nil
	}
	log := buildOptions(opts).log
	name, err := namestore.Read(path)
	if err != nil {
		log.Debug("restore theme selection", slog.String("path", path), slog.Any("err", err))
		return nil
	}
	t, ok := reg.Find(name)
	if !ok {
		log.Debug("saved theme not available", slog.String("name", name))
		return nil
	}
	return t
}
