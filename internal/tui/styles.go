package tui

import "github.com/charmbracelet/lipgloss"

// MinListWidth is the minimum character width for the contact list pane.
const MinListWidth = 24

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// TitleStyle styles the contact name heading in the detail pane.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// BirthdayBadge styles the upcoming-congratulation marker.
func BirthdayBadge() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}).
		Bold(true)
}

// DimStyle styles secondary text such as empty-state placeholders.
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}

// PaneWidths calculates the list and detail pane widths from a total width.
// The list gets 1/3 (minimum MinListWidth), the detail pane the rest.
func PaneWidths(totalWidth int) (list, detail int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	list = totalWidth / 3
	if list < MinListWidth {
		list = MinListWidth
	}
	detail = totalWidth - list
	if detail < 0 {
		detail = 0
	}
	return list, detail
}
