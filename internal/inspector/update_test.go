package inspector

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/screenfit"
)

func setupTestInspector(t *testing.T) Model {
	t.Helper()
	om := screenfit.NewOrientationManager(screenfit.WithSettleDelay(time.Hour))
	lm := screenfit.NewLayoutManager(om)
	t.Cleanup(func() {
		_ = lm.Close()
		_ = om.Close()
	})
	m := New(om, lm)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeFollowsTerminal(t *testing.T) {
	m := setupTestInspector(t)
	if got := m.om.State().Dimensions; got != (screenfit.Dimensions{Width: 120, Height: 40}) {
		t.Fatalf("expected manager to follow terminal size, got %s", got)
	}
}

func TestPresetKeysSimulate(t *testing.T) {
	m := setupTestInspector(t)

	model, _ := m.Update(keyMsg("2"))
	m = model.(Model)
	if !m.simulating {
		t.Fatalf("expected simulating after preset key")
	}
	if got := m.om.State().Dimensions; got != (screenfit.Dimensions{Width: 820, Height: 1180}) {
		t.Fatalf("expected tablet preset, got %s", got)
	}

	// While simulating, terminal resizes must not clobber the simulation.
	model, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(Model)
	if got := m.om.State().Dimensions; got != (screenfit.Dimensions{Width: 820, Height: 1180}) {
		t.Fatalf("expected simulated size retained across resize, got %s", got)
	}
}

func TestFollowKeyRestoresTerminalSize(t *testing.T) {
	m := setupTestInspector(t)

	model, _ := m.Update(keyMsg("1"))
	m = model.(Model)
	model, _ = m.Update(keyMsg("f"))
	m = model.(Model)

	if m.simulating {
		t.Fatalf("expected simulation off after follow key")
	}
	if got := m.om.State().Dimensions; got != (screenfit.Dimensions{Width: 120, Height: 40}) {
		t.Fatalf("expected terminal size restored, got %s", got)
	}
}

func TestProfileToggle(t *testing.T) {
	m := setupTestInspector(t)
	if m.lm.Profile().Name != "default" {
		t.Fatalf("expected default profile initially")
	}

	model, _ := m.Update(keyMsg("t"))
	m = model.(Model)
	if m.lm.Profile().Name != "terminal" {
		t.Fatalf("expected terminal profile after toggle, got %q", m.lm.Profile().Name)
	}

	model, _ = m.Update(keyMsg("t"))
	m = model.(Model)
	if m.lm.Profile().Name != "default" {
		t.Fatalf("expected default profile after second toggle, got %q", m.lm.Profile().Name)
	}
}

func TestGridToggle(t *testing.T) {
	m := setupTestInspector(t)
	if !m.showGrid {
		t.Fatalf("expected grid preview on by default")
	}
	model, _ := m.Update(keyMsg("g"))
	m = model.(Model)
	if m.showGrid {
		t.Fatalf("expected grid preview off after toggle")
	}
}

func TestSimulateInputFlow(t *testing.T) {
	m := setupTestInspector(t)

	model, _ := m.Update(keyMsg("s"))
	m = model.(Model)
	if !m.entering {
		t.Fatalf("expected input mode after s")
	}

	m.input.SetValue("1366x1024")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)

	if m.entering {
		t.Fatalf("expected input mode to close on enter")
	}
	if !m.simulating {
		t.Fatalf("expected simulating after input")
	}
	if got := m.om.State().Dimensions; got != (screenfit.Dimensions{Width: 1366, Height: 1024}) {
		t.Fatalf("expected 1366x1024, got %s", got)
	}
}

func TestSimulateInputRejectsGarbage(t *testing.T) {
	m := setupTestInspector(t)

	model, _ := m.Update(keyMsg("s"))
	m = model.(Model)
	m.input.SetValue("potato")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)

	if !m.entering {
		t.Fatalf("expected input mode to stay open on bad input")
	}
	if m.err == nil {
		t.Fatalf("expected an error for bad input")
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = model.(Model)
	if m.entering {
		t.Fatalf("expected escape to close input mode")
	}
}

func TestQuitKeys(t *testing.T) {
	m := setupTestInspector(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected QuitMsg, got %T", msg)
	}
}

func TestParseDimensions(t *testing.T) {
	cases := []struct {
		in      string
		want    screenfit.Dimensions
		wantErr bool
	}{
		{"820x1180", screenfit.Dimensions{Width: 820, Height: 1180}, false},
		{" 80 x 24 ", screenfit.Dimensions{Width: 80, Height: 24}, false},
		{"375X812", screenfit.Dimensions{Width: 375, Height: 812}, false},
		{"80", screenfit.Dimensions{}, true},
		{"0x24", screenfit.Dimensions{}, true},
		{"-5x24", screenfit.Dimensions{}, true},
		{"axb", screenfit.Dimensions{}, true},
	}
	for _, c := range cases {
		got, err := parseDimensions(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %s, got %s", c.in, c.want, got)
		}
	}
}
