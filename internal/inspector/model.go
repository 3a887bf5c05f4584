// Package inspector implements the screenfit inspector TUI: a live view of
// the dimensions, orientation, and layout the library derives for the
// terminal it runs in, with simulated sizes for trying other surfaces.
package inspector

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/screenfit"
	"github.com/akyairhashvil/screenfit/teabind"
)

// Scenario preset sizes reachable from the 1/2/3 keys.
var presets = []screenfit.Dimensions{
	{Width: 375, Height: 812},
	{Width: 820, Height: 1180},
	{Width: 1366, Height: 1024},
}

// Model is the root bubbletea model of the inspector.
type Model struct {
	om   *screenfit.OrientationManager
	lm   *screenfit.LayoutManager
	bind teabind.Model

	// Terminal size, kept separately from the inspected dimensions so a
	// simulated surface still renders inside the real window.
	width  int
	height int

	simulating bool
	entering   bool
	showGrid   bool

	progress progress.Model
	input    textinput.Model
	err      error
}

func New(om *screenfit.OrientationManager, lm *screenfit.LayoutManager) Model {
	ti := textinput.New()
	ti.Placeholder = "WIDTHxHEIGHT"
	ti.CharLimit = 11
	ti.Width = 14

	return Model{
		om:       om,
		lm:       lm,
		bind:     teabind.New(om, lm),
		showGrid: true,
		progress: progress.New(progress.WithDefaultGradient()),
		input:    ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
