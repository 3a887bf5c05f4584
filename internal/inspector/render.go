package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/screenfit"
	"github.com/akyairhashvil/screenfit/internal/util"
)

func (m Model) View() string {
	state := m.om.State()
	cfg := m.lm.Config()

	var b strings.Builder
	b.WriteString(m.renderHeader(state, cfg))
	b.WriteString("\n")

	if state.IsTransitioning {
		b.WriteString(m.progress.ViewAs(state.TransitionProgress))
		b.WriteString("\n")
	}

	compact := m.width > 0 && m.width < compactThreshold
	if !compact {
		b.WriteString(m.renderBreakpoints(state))
		b.WriteString("\n")
		b.WriteString(m.renderConfig(cfg))
		b.WriteString("\n")
		if m.showGrid {
			b.WriteString(m.renderGrid(cfg))
			b.WriteString("\n")
		}
	}

	if m.entering {
		b.WriteString(fmt.Sprintf("\n  Simulate size: %s\n", m.input.View()))
	}
	if m.err != nil {
		b.WriteString(styleError.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return m.truncateToWidth(b.String())
}

func (m Model) renderHeader(state screenfit.OrientationState, cfg screenfit.LayoutConfig) string {
	glyph := "▯"
	if state.Current == screenfit.Landscape {
		glyph = "▭"
	}
	source := "terminal"
	if m.simulating {
		source = "simulated"
	}
	title := fmt.Sprintf("%s %s  %s  aspect %.2f  %s  [%s, %s profile]",
		glyph,
		state.Dimensions,
		state.Current,
		state.Dimensions.AspectRatio(),
		cfg.DeviceClass,
		source,
		m.lm.Profile().Name,
	)
	return styleHeader.Render(title) + "  " + styleDim.Render(versionLabel())
}

func (m Model) renderBreakpoints(state screenfit.OrientationState) string {
	active := m.lm.Breakpoint()
	var rows []string
	for _, bp := range m.lm.Profile().Breakpoints {
		marker := "  "
		line := fmt.Sprintf("%-10s ≥%-5d %-13s %d cols", bp.Name, bp.MinWidth, bp.Strategy, bp.Columns)
		if bp.Name == active.Name {
			marker = "▶ "
			line = styleActiveTier.Render(line)
		} else {
			line = styleDim.Render(line)
		}
		rows = append(rows, marker+line)
	}
	return stylePanel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderConfig(cfg screenfit.LayoutConfig) string {
	lines := []string{
		fmt.Sprintf("%s %d", styleLabel.Render("columns    "), cfg.Columns),
		fmt.Sprintf("%s %d", styleLabel.Render("gutter     "), cfg.Gutter),
		fmt.Sprintf("%s %d,%d,%d,%d", styleLabel.Render("margins    "),
			cfg.Margins.Top, cfg.Margins.Right, cfg.Margins.Bottom, cfg.Margins.Left),
		fmt.Sprintf("%s %d", styleLabel.Render("touch size "), cfg.TouchTargetSize),
		fmt.Sprintf("%s %s", styleLabel.Render("density    "), cfg.ContentDensity),
		fmt.Sprintf("%s %s", styleLabel.Render("navigation "), cfg.NavigationPattern),
		fmt.Sprintf("%s %s", styleLabel.Render("strategy   "), cfg.Strategy),
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}

// renderGrid previews the auto-fit grid with one bordered cell per column.
func (m Model) renderGrid(cfg screenfit.LayoutConfig) string {
	itemWidth := 18
	grid := m.lm.GridLayout(itemWidth, 0)

	// Keep the preview inside the real window regardless of the inspected
	// dimensions.
	maxCells := 1
	if m.width > 0 {
		maxCells = util.Clamp((m.width-4)/(itemWidth+2), 1, 8)
	}
	cells := util.Clamp(grid.Columns, 1, maxCells)

	cell := styleGridCell.Width(itemWidth - 2).Render("·")
	row := make([]string, cells)
	for i := range row {
		row[i] = cell
	}
	preview := lipgloss.JoinHorizontal(lipgloss.Top, row...)
	caption := styleDim.Render(fmt.Sprintf("grid preview: %d columns of %d", grid.Columns, grid.ItemWidth))
	return caption + "\n" + preview
}

func (m Model) renderFooter() string {
	help := "q quit · s simulate · 1/2/3 presets · f follow · t profile · g grid"
	if m.width > 0 && m.width < compactThreshold {
		help = "q·s·1/2/3·f·t·g"
	}
	return styleDim.Render("  " + help)
}

// truncateToWidth keeps every rendered line inside the terminal so lipgloss
// borders survive narrow windows.
func (m Model) truncateToWidth(s string) string {
	if m.width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > m.width {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
