package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a theme file, directory or theme is absent.
	ErrNotFound = errors.New("not found")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed theme")
	// ErrInvalidArgument is returned for nil themes and surfaces.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseError reports a theme file whose style sheet could not be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Path, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
