package formatter

import (
	"fmt"
	"strings"

	"flowdeck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// QuadrantColor returns the lipgloss style corresponding to the given
// priority quadrant.
func QuadrantColor(q domain.Quadrant) lipgloss.Style {
	switch q {
	case domain.QuadrantDoFirst:
		return StyleRed
	case domain.QuadrantSchedule:
		return StyleYellow
	case domain.QuadrantDelegate:
		return StyleBlue
	case domain.QuadrantEliminate:
		return StyleDim
	default:
		return StyleDim
	}
}

// QuadrantBadge returns a colored quadrant indicator string such as "● DO FIRST".
func QuadrantBadge(q domain.Quadrant) string {
	label := "UNKNOWN"
	switch q {
	case domain.QuadrantDoFirst:
		label = "DO FIRST"
	case domain.QuadrantSchedule:
		label = "SCHEDULE"
	case domain.QuadrantDelegate:
		label = "DELEGATE"
	case domain.QuadrantEliminate:
		label = "ELIMINATE"
	}
	return QuadrantColor(q).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
