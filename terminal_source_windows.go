//go:build windows

package screenfit

import "time"

// pollInterval bounds resize-detection latency on windows, which has no
// SIGWINCH equivalent.
const pollInterval = 250 * time.Millisecond

// watch polls the console size and pushes changes into the event stream. It
// owns the events channel and closes it on Close.
func (s *TerminalSource) watch() {
	ticker := time.NewTicker(pollInterval)
	defer func() {
		ticker.Stop()
		close(s.events)
	}()

	last, _ := s.Size()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			d, err := s.Size()
			if err != nil || !d.Valid() || d == last {
				continue
			}
			last = d
			s.push(d)
		}
	}
}
