package inspector

import "github.com/charmbracelet/lipgloss"

// compactThreshold triggers the reduced rendering below this terminal
// width.
const compactThreshold = 60

var (
	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	styleActiveTier = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	styleGridCell = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Align(lipgloss.Center)
)
