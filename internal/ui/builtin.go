package ui

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Resource identifiers for the sheets compiled into the binary.
const (
	BuiltinLight = "builtin:light"
	BuiltinDark  = "builtin:dark"
)

const builtinPrefix = "builtin:"

var (
	builtinMu     sync.Mutex
	builtinSheets = make(map[string]*Sheet)
)

// Builtin returns the embedded sheet for id. Each id is parsed once; later
// calls return the same pointer.
func Builtin(id string) (*Sheet, error) {
	name, ok := strings.CutPrefix(id, builtinPrefix)
	if !ok || name == "" {
		return nil, fmt.Errorf("not a built-in sheet id: %q", id)
	}

	builtinMu.Lock()
	defer builtinMu.Unlock()
	if s, ok := builtinSheets[id]; ok {
		return s, nil
	}
	data, err := builtinFS.ReadFile("builtin/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in sheet %q", id)
	}
	s, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("built-in sheet %q: %w", id, err)
	}
	builtinSheets[id] = s
	return s, nil
}

// MustBuiltin is Builtin for ids known at compile time.
func MustBuiltin(id string) *Sheet {
	s, err := Builtin(id)
	if err != nil {
		panic(err)
	}
	return s
}
