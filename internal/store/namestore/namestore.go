package namestore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Plain-text storage for a single name. One file, one line, overwritten on
// every write. No locking; a single UI process owns the file.

// ErrEmpty is returned by Read when the file holds no name.
var ErrEmpty = errors.New("no name stored")

// Read returns the first line of path exactly as written, without its line
// terminator. Surrounding spaces are part of the name.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("scan: %w", err)
		}
		return "", ErrEmpty
	}
	name := strings.TrimSuffix(sc.Text(), "\r")
	if name == "" {
		return "", ErrEmpty
	}
	return name, nil
}

// Write replaces the contents of path with name, stored verbatim. Empty names
// and names spanning several lines cannot be read back and are rejected. The
// parent directory is created if needed and the file is swapped in with a
// rename.
func Write(path, name string) error {
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("invalid name %q", name)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(name + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
