package screenfit

import (
	"context"
	"sync"
	"time"
)

// OrientationState is the snapshot an OrientationManager hands to readers
// and subscribers. TransitionProgress is 0 at the start of a transition and
// 1 once the settle delay has elapsed; it only moves when an event moves it,
// never on read.
type OrientationState struct {
	Current            Orientation
	IsTransitioning    bool
	TransitionProgress float64
	Dimensions         Dimensions
}

// UnsubscribeFunc detaches a subscriber. Safe to call more than once; after
// the first call returns the subscriber is never invoked again.
type UnsubscribeFunc func()

// OrientationOption configures an OrientationManager at construction.
type OrientationOption func(*OrientationManager)

// WithSettleDelay overrides the wait between a dimension change and the
// transition clearing.
func WithSettleDelay(d time.Duration) OrientationOption {
	return func(m *OrientationManager) {
		if d > 0 {
			m.settleDelay = d
		}
	}
}

// WithInitialDimensions seeds the manager without emitting a notification
// or starting a transition.
func WithInitialDimensions(d Dimensions) OrientationOption {
	return func(m *OrientationManager) {
		if d.Valid() {
			m.state.Dimensions = d
			m.state.Current = d.Orientation()
		}
	}
}

// WithProgressInterval enables intermediate TransitionProgress ticks during
// the settle window. Zero (the default) means progress jumps straight from
// 0 to 1 at settle time.
func WithProgressInterval(d time.Duration) OrientationOption {
	return func(m *OrientationManager) {
		if d > 0 {
			m.progressInterval = d
		}
	}
}

// WithProfile takes the settle delay from a profile. Breakpoints are the
// LayoutManager's concern; only the delay applies here.
func WithProfile(p Profile) OrientationOption {
	return WithSettleDelay(p.SettleDelay)
}

// OrientationManager owns the surface dimensions and their derived
// orientation, and notifies subscribers on every state change. Construct
// one per surface and pass it to whatever needs it; there is no package
// singleton.
type OrientationManager struct {
	mu               sync.Mutex
	state            OrientationState
	settleDelay      time.Duration
	progressInterval time.Duration
	subs             map[int]func(OrientationState)
	nextSub          int
	settleTimer      *time.Timer
	progressTimer    *time.Timer
	transitionStart  time.Time
	gen              uint64
	closed           bool
}

func NewOrientationManager(opts ...OrientationOption) *OrientationManager {
	m := &OrientationManager{
		state:       OrientationState{TransitionProgress: 1},
		settleDelay: DefaultSettleDelay,
		subs:        make(map[int]func(OrientationState)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the last computed snapshot. Two calls with no intervening
// event return identical values.
func (m *OrientationManager) State() OrientationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a listener invoked on every state change. No ordering
// is guaranteed between subscribers.
func (m *OrientationManager) Subscribe(fn func(OrientationState)) UnsubscribeFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return func() {}
	}
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// SetDimensions is the host-push entry point. Invalid dimensions are
// ignored and equal dimensions are a no-op; otherwise the manager stores the
// new size, recomputes orientation, marks the state as transitioning, and
// (re)arms the settle timer. Rapid changes extend the settle window rather
// than settling mid-flight.
func (m *OrientationManager) SetDimensions(d Dimensions) {
	m.mu.Lock()
	if m.closed || !d.Valid() || d == m.state.Dimensions {
		m.mu.Unlock()
		return
	}

	m.state.Dimensions = d
	m.state.Current = d.Orientation()
	m.state.IsTransitioning = true
	m.state.TransitionProgress = 0
	m.transitionStart = time.Now()
	m.gen++
	m.armTimersLocked()
	snapshot, ids := m.state, m.subIDsLocked()
	m.mu.Unlock()

	m.notify(ids, snapshot)
}

// armTimersLocked schedules the settle timer and, if enabled, the first
// progress tick. The generation counter invalidates fires that lost a race
// with a newer change, in the style of a debouncer.
func (m *OrientationManager) armTimersLocked() {
	gen := m.gen
	if m.settleTimer != nil {
		m.settleTimer.Stop()
	}
	m.settleTimer = time.AfterFunc(m.settleDelay, func() { m.settle(gen) })
	if m.progressTimer != nil {
		m.progressTimer.Stop()
		m.progressTimer = nil
	}
	if m.progressInterval > 0 && m.progressInterval < m.settleDelay {
		m.progressTimer = time.AfterFunc(m.progressInterval, func() { m.progressTick(gen) })
	}
}

func (m *OrientationManager) settle(gen uint64) {
	m.mu.Lock()
	if m.closed || gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.state.IsTransitioning = false
	m.state.TransitionProgress = 1
	m.settleTimer = nil
	if m.progressTimer != nil {
		m.progressTimer.Stop()
		m.progressTimer = nil
	}
	snapshot, ids := m.state, m.subIDsLocked()
	m.mu.Unlock()

	m.notify(ids, snapshot)
}

func (m *OrientationManager) progressTick(gen uint64) {
	m.mu.Lock()
	if m.closed || gen != m.gen || !m.state.IsTransitioning {
		m.mu.Unlock()
		return
	}
	progress := float64(time.Since(m.transitionStart)) / float64(m.settleDelay)
	if progress > 1 {
		progress = 1
	}
	m.state.TransitionProgress = progress
	m.progressTimer = time.AfterFunc(m.progressInterval, func() { m.progressTick(gen) })
	snapshot, ids := m.state, m.subIDsLocked()
	m.mu.Unlock()

	m.notify(ids, snapshot)
}

// Watch seeds the manager from src.Size, then pumps src.Events into
// SetDimensions until ctx is done or the stream closes. It blocks; run it
// on its own goroutine.
func (m *OrientationManager) Watch(ctx context.Context, src Source) error {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return ErrClosed
	}

	if d, err := src.Size(); err == nil {
		m.SetDimensions(d)
	}
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-events:
			if !ok {
				return nil
			}
			m.SetDimensions(d)
		}
	}
}

// SetSettleDelay reconfigures the settle window for future transitions. An
// in-flight transition keeps the delay it started with.
func (m *OrientationManager) SetSettleDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settleDelay = d
}

// SettleDelay returns the configured settle window.
func (m *OrientationManager) SettleDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settleDelay
}

// Close cancels pending timers and drops all subscribers. Subsequent calls
// are no-ops.
func (m *OrientationManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	m.gen++
	if m.settleTimer != nil {
		m.settleTimer.Stop()
		m.settleTimer = nil
	}
	if m.progressTimer != nil {
		m.progressTimer.Stop()
		m.progressTimer = nil
	}
	m.subs = nil
	return nil
}

func (m *OrientationManager) subIDsLocked() []int {
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	return ids
}

// notify runs callbacks outside the lock so subscribers may call back into
// the manager. Membership is re-checked per subscriber so a disposer that
// ran after the snapshot still wins.
func (m *OrientationManager) notify(ids []int, s OrientationState) {
	for _, id := range ids {
		m.mu.Lock()
		fn := m.subs[id]
		m.mu.Unlock()
		if fn != nil {
			fn(s)
		}
	}
}
