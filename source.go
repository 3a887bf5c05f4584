package screenfit

import "sync"

// Source is the host collaborator feeding a manager: a synchronous size
// query plus a stream of dimension changes. The events channel closes when
// the source is closed.
//
//go:generate mockgen -source=source.go -destination=mock_source_test.go -package=screenfit
type Source interface {
	Size() (Dimensions, error)
	Events() <-chan Dimensions
	Close() error
}

// ManualSource is an in-memory Source driven by explicit Resize calls. It
// serves tests, demos, and hosts without a native resize stream.
type ManualSource struct {
	mu     sync.Mutex
	dims   Dimensions
	events chan Dimensions
	closed bool
}

var _ Source = (*ManualSource)(nil)

func NewManualSource(width, height int) *ManualSource {
	return &ManualSource{
		dims:   Dimensions{Width: width, Height: height},
		events: make(chan Dimensions, 16),
	}
}

func (s *ManualSource) Size() (Dimensions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Dimensions{}, ErrClosed
	}
	return s.dims, nil
}

func (s *ManualSource) Events() <-chan Dimensions {
	return s.events
}

// Resize records the new size and pushes it onto the event stream. If no
// consumer is draining and the buffer fills up, the event is dropped; the
// size query still reflects the latest value.
func (s *ManualSource) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.dims = Dimensions{Width: width, Height: height}
	select {
	case s.events <- s.dims:
	default:
	}
}

func (s *ManualSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.events)
	return nil
}
