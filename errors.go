package screenfit

import (
	"errors"
	"fmt"
)

var (
	ErrClosed              = errors.New("manager is closed")
	ErrNotTerminal         = errors.New("file is not a terminal")
	ErrNoBreakpoints       = errors.New("profile has no breakpoints")
	ErrBaseBreakpoint      = errors.New("first breakpoint must start at min width 0")
	ErrUnsortedBreakpoints = errors.New("breakpoint min widths must be strictly ascending")
	ErrBreakpointColumns   = errors.New("breakpoint must provide at least one column")
	ErrStrategyOrder       = errors.New("breakpoint strategy must not shrink as width grows")
)

// ProfileError wraps failures while loading or watching a profile file.
type ProfileError struct {
	Path string
	Err  error
}

func (e *ProfileError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("profile %s: %v", e.Path, e.Err)
}

func (e *ProfileError) Unwrap() error { return e.Err }

func wrapProfileErr(path string, err error) error {
	if err == nil {
		return nil
	}
	return &ProfileError{Path: path, Err: err}
}
