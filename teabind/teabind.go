// Package teabind binds screenfit managers to a Bubble Tea program.
//
// Embed a Model to forward tea.WindowSizeMsg into an OrientationManager and
// read back the derived state, and use Listen to turn manager notifications
// into messages delivered through tea.Program.Send.
package teabind

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/screenfit"
)

// OrientationMsg carries an orientation change into the program loop.
type OrientationMsg struct {
	State screenfit.OrientationState
}

// LayoutMsg carries a layout change into the program loop.
type LayoutMsg struct {
	Config screenfit.LayoutConfig
}

// Model is an embeddable component owning the plumbing between a Bubble Tea
// program and a pair of managers. It forwards window sizes in and keeps the
// latest snapshots for the host model to read during View.
type Model struct {
	om *screenfit.OrientationManager
	lm *screenfit.LayoutManager

	orientation screenfit.OrientationState
	layout      screenfit.LayoutConfig
}

func New(om *screenfit.OrientationManager, lm *screenfit.LayoutManager) Model {
	return Model{
		om:          om,
		lm:          lm,
		orientation: om.State(),
		layout:      lm.Config(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes tea.WindowSizeMsg and the teabind message types; anything
// else passes through untouched. Hosts call it from their own Update.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.om.SetDimensions(screenfit.Dimensions{Width: msg.Width, Height: msg.Height})
		m.orientation = m.om.State()
		m.layout = m.lm.Config()
	case OrientationMsg:
		m.orientation = msg.State
		m.layout = m.lm.Config()
	case LayoutMsg:
		m.layout = msg.Config
	}
	return m, nil
}

// Orientation returns the latest orientation snapshot seen by Update.
func (m Model) Orientation() screenfit.OrientationState {
	return m.orientation
}

// Layout returns the latest layout snapshot seen by Update.
func (m Model) Layout() screenfit.LayoutConfig {
	return m.layout
}

// Listen subscribes to both managers and forwards every notification into
// the program loop via send, typically tea.Program.Send. Each message is
// sent on its own goroutine: tea.Program.Send blocks until the loop drains
// it, and a manager driven from inside Update would otherwise deadlock the
// loop. Subscribers carry no ordering guarantee, so neither does delivery.
// The returned disposer detaches both subscriptions.
func Listen(send func(tea.Msg), om *screenfit.OrientationManager, lm *screenfit.LayoutManager) screenfit.UnsubscribeFunc {
	unsubOrientation := om.Subscribe(func(s screenfit.OrientationState) {
		go send(OrientationMsg{State: s})
	})
	unsubLayout := lm.Subscribe(func(cfg screenfit.LayoutConfig) {
		go send(LayoutMsg{Config: cfg})
	})
	return func() {
		unsubOrientation()
		unsubLayout()
	}
}
