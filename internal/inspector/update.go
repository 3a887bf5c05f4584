package inspector

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/screenfit"
	"github.com/akyairhashvil/screenfit/internal/util"
	"github.com/akyairhashvil/screenfit/teabind"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clampProgressWidth(msg.Width)
		if !m.simulating {
			m.bind, _ = m.bind.Update(msg)
		}
		return m, nil

	case teabind.OrientationMsg, teabind.LayoutMsg:
		m.bind, _ = m.bind.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entering {
		return m.updateEntering(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		m.entering = true
		m.err = nil
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		m.simulating = true
		m.om.SetDimensions(presets[idx])
		return m, nil

	case "f":
		// Follow the real terminal again.
		m.simulating = false
		if m.width > 0 && m.height > 0 {
			m.om.SetDimensions(screenfit.Dimensions{Width: m.width, Height: m.height})
		}
		return m, nil

	case "t":
		next := screenfit.TerminalProfile()
		if m.lm.Profile().Name == "terminal" {
			next = screenfit.DefaultProfile()
		}
		if err := m.lm.SetProfile(next); err != nil {
			m.err = err
		}
		return m, nil

	case "g":
		m.showGrid = !m.showGrid
		return m, nil
	}

	return m, nil
}

func (m Model) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEscape:
		m.entering = false
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		d, err := parseDimensions(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.entering = false
		m.input.Blur()
		m.err = nil
		m.simulating = true
		m.om.SetDimensions(d)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseDimensions accepts "WxH" with an optional space around the x.
func parseDimensions(s string) (screenfit.Dimensions, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return screenfit.Dimensions{}, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return screenfit.Dimensions{}, fmt.Errorf("bad width %q", parts[0])
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return screenfit.Dimensions{}, fmt.Errorf("bad height %q", parts[1])
	}
	d := screenfit.Dimensions{Width: w, Height: h}
	if !d.Valid() {
		return screenfit.Dimensions{}, fmt.Errorf("dimensions must be positive, got %s", d)
	}
	return d, nil
}

func clampProgressWidth(w int) int {
	const pad = 4
	return util.Clamp(w-pad, 10, 60)
}
