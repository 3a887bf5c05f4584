//go:build unix

package screenfit

import (
	"os"
	"os/signal"
	"syscall"
)

// watch forwards SIGWINCH into the event stream. It owns the events channel
// and closes it on Close.
func (s *TerminalSource) watch() {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer func() {
		signal.Stop(winch)
		close(s.events)
	}()

	for {
		select {
		case <-s.done:
			return
		case <-winch:
			if d, err := s.Size(); err == nil && d.Valid() {
				s.push(d)
			}
		}
	}
}
