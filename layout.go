package screenfit

import "sync"

// Margins is the outer spacing of the content area.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns the combined left and right margin.
func (m Margins) Horizontal() int { return m.Left + m.Right }

// Vertical returns the combined top and bottom margin.
func (m Margins) Vertical() int { return m.Top + m.Bottom }

func uniformMargins(v int) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// LayoutConfig is the discrete layout decision for a set of dimensions. It
// is a value recomputed on demand; it has no identity or lifecycle of its
// own.
type LayoutConfig struct {
	Columns           int
	Gutter            int
	Margins           Margins
	TouchTargetSize   int
	ContentDensity    Density
	NavigationPattern NavigationPattern
	Strategy          Strategy
	DeviceClass       DeviceClass
}

// LayoutOption configures a LayoutManager at construction.
type LayoutOption func(*LayoutManager)

// WithLayoutProfile selects the breakpoint table. Invalid profiles are
// ignored in favor of the default; use SetProfile to observe validation
// errors.
func WithLayoutProfile(p Profile) LayoutOption {
	return func(m *LayoutManager) {
		if p.Validate() == nil {
			m.profile = p
		}
	}
}

// LayoutManager maps the orientation manager's current dimensions onto a
// LayoutConfig through its profile's breakpoint table, and re-emits to its
// own subscribers whenever the orientation manager notifies or the profile
// is swapped. The orientation manager is injected, never global.
type LayoutManager struct {
	mu      sync.Mutex
	om      *OrientationManager
	profile Profile
	subs    map[int]func(LayoutConfig)
	nextSub int
	detach  UnsubscribeFunc
	closed  bool
}

func NewLayoutManager(om *OrientationManager, opts ...LayoutOption) *LayoutManager {
	m := &LayoutManager{
		om:      om,
		profile: DefaultProfile(),
		subs:    make(map[int]func(LayoutConfig)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.detach = om.Subscribe(func(OrientationState) {
		m.emit()
	})
	return m
}

// Config derives the layout for the orientation manager's current
// dimensions.
func (m *LayoutManager) Config() LayoutConfig {
	return m.ConfigFor(m.om.State().Dimensions)
}

// ConfigFor is the derivation as a pure function of dimensions and the
// active profile. Invalid dimensions fall back to the base tier; Columns is
// at least 1 for every input.
func (m *LayoutManager) ConfigFor(d Dimensions) LayoutConfig {
	m.mu.Lock()
	p := m.profile
	m.mu.Unlock()
	return configFor(p, d)
}

func configFor(p Profile, d Dimensions) LayoutConfig {
	width := d.Width
	if !d.Valid() {
		width = 0
	}
	tier := p.Resolve(width)
	return LayoutConfig{
		Columns:           tier.columnsAt(width),
		Gutter:            tier.Gutter,
		Margins:           uniformMargins(tier.Margin),
		TouchTargetSize:   tier.TouchTargetSize,
		ContentDensity:    tier.ContentDensity,
		NavigationPattern: tier.NavigationPattern,
		Strategy:          tier.Strategy,
		DeviceClass:       p.DeviceClass(d),
	}
}

// Subscribe registers a listener re-invoked whenever the derived config may
// have changed. No ordering is guaranteed between subscribers.
func (m *LayoutManager) Subscribe(fn func(LayoutConfig)) UnsubscribeFunc {
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

// SetProfile validates and swaps the breakpoint table, then re-emits, and
// propagates the profile's settle delay to the orientation manager.
func (m *LayoutManager) SetProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.profile = p
	m.mu.Unlock()

	if p.SettleDelay > 0 {
		m.om.SetSettleDelay(p.SettleDelay)
	}
	m.emit()
	return nil
}

// Profile returns the active profile.
func (m *LayoutManager) Profile() Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// Breakpoint returns the tier for the current width.
func (m *LayoutManager) Breakpoint() Breakpoint {
	d := m.om.State().Dimensions
	m.mu.Lock()
	defer m.mu.Unlock()
	width := d.Width
	if !d.Valid() {
		width = 0
	}
	return m.profile.Resolve(width)
}

// DeviceClass returns the rotation-invariant class of the current surface.
func (m *LayoutManager) DeviceClass() DeviceClass {
	d := m.om.State().Dimensions
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile.DeviceClass(d)
}

// Close detaches from the orientation manager and drops subscribers.
// Subsequent calls are no-ops.
func (m *LayoutManager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	detach := m.detach
	m.detach = nil
	m.subs = nil
	m.mu.Unlock()

	if detach != nil {
		detach()
	}
	return nil
}

func (m *LayoutManager) emit() {
	cfg := m.Config()
	m.mu.Lock()
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.mu.Lock()
		fn := m.subs[id]
		m.mu.Unlock()
		if fn != nil {
			fn(cfg)
		}
	}
}
