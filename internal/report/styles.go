package report

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("12")  // bright blue
	colorDim     = lipgloss.Color("240") // gray
	colorBorder  = lipgloss.Color("238") // dark gray

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	styleAxial = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // bright yellow

	styleLateral = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // bright green

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
