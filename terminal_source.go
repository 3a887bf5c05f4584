package screenfit

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// TerminalSource reads dimensions from a tty. Size queries go through
// term.GetSize; the change stream comes from SIGWINCH on unix and from
// polling on windows.
type TerminalSource struct {
	f         *os.File
	events    chan Dimensions
	done      chan struct{}
	closeOnce sync.Once
}

var _ Source = (*TerminalSource)(nil)

// NewTerminalSource wraps f, which must be a terminal; otherwise it returns
// ErrNotTerminal. The change stream starts immediately.
func NewTerminalSource(f *os.File) (*TerminalSource, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}
	s := &TerminalSource{
		f:      f,
		events: make(chan Dimensions, 16),
		done:   make(chan struct{}),
	}
	go s.watch()
	return s, nil
}

func (s *TerminalSource) Size() (Dimensions, error) {
	w, h, err := term.GetSize(int(s.f.Fd()))
	if err != nil {
		return Dimensions{}, fmt.Errorf("query terminal size: %w", err)
	}
	return Dimensions{Width: w, Height: h}, nil
}

func (s *TerminalSource) Events() <-chan Dimensions {
	return s.events
}

// push delivers a change without blocking the watch goroutine; a full
// buffer drops the event, and the next size query still sees the latest
// value.
func (s *TerminalSource) push(d Dimensions) {
	select {
	case s.events <- d:
	default:
	}
}

func (s *TerminalSource) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return nil
}
