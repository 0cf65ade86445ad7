// Package tui implements the read-only contact browser.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkovalov/rolodex/internal/book"
	"github.com/mkovalov/rolodex/internal/contact"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// pane identifies which side of the browser has focus. Focus only affects
// border highlighting; navigation keys always move the list cursor.
type pane int

const (
	paneList pane = iota
	paneDetail
)

// Model is the Bubble Tea model for the contact browser. It works on a
// snapshot of the book taken at construction; the browser never mutates.
type Model struct {
	records   []*contact.Record
	greetings map[string]string // name → formatted congratulation date

	cursor   int
	focus    pane
	keys     browseKeys
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds a browser over b. Congratulation dates are computed once,
// against today, so upcoming birthdays get a badge in the detail pane.
func NewModel(b *book.Book, today time.Time) Model {
	greetings := make(map[string]string)
	for _, g := range b.UpcomingBirthdays(today) {
		greetings[g.Name] = g.FormattedDate()
	}

	return Model{
		records:   b.Records(),
		greetings: greetings,
		keys:      defaultBrowseKeys(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if len(m.records) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.records) - 1
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if len(m.records) > 0 {
				m.cursor++
				if m.cursor >= len(m.records) {
					m.cursor = 0
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			if m.focus == paneList {
				m.focus = paneDetail
			} else {
				m.focus = paneList
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the list pane, the detail pane, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	listWidth, detailWidth := PaneWidths(m.width)

	listStyle := UnfocusedBorder().Width(listWidth)
	detailStyle := UnfocusedBorder().Width(detailWidth)
	if m.focus == paneList {
		listStyle = FocusedBorder().Width(listWidth)
	} else {
		detailStyle = FocusedBorder().Width(detailWidth)
	}

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(m.listView()),
		detailStyle.Render(m.detailView()),
	)

	return panes + "\n" + m.help.View(m.keys)
}

// listView renders the contact name list with the cursor marker.
func (m Model) listView() string {
	if len(m.records) == 0 {
		return DimStyle().Render("No contacts yet.")
	}

	var b strings.Builder
	for i, rec := range m.records {
		marker := "  "
		if i == m.cursor {
			marker = CursorMarker
		}
		line := marker + rec.Name()
		if _, ok := m.greetings[rec.Name()]; ok {
			line += " " + BirthdayBadge().Render("●")
		}
		b.WriteString(line)
		if i < len(m.records)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// detailView renders the selected contact's phones and birthday.
func (m Model) detailView() string {
	if len(m.records) == 0 {
		return DimStyle().Render("Add a contact with: rolodex add <name> <phone>")
	}

	rec := m.records[m.cursor]

	var b strings.Builder
	b.WriteString(TitleStyle().Render(rec.Name()))
	b.WriteString("\n\n")

	phones := rec.Phones()
	if len(phones) == 0 {
		b.WriteString(DimStyle().Render("No phones saved."))
	} else {
		for i, p := range phones {
			b.WriteString("☎ " + p.String())
			if i < len(phones)-1 {
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")

	if bday, ok := rec.Birthday(); ok {
		b.WriteString("\n" + fmt.Sprintf("Birthday: %s", bday))
		if date, ok := m.greetings[rec.Name()]; ok {
			b.WriteString("\n" + BirthdayBadge().Render(fmt.Sprintf("Congratulate on %s", date)))
		}
	} else {
		b.WriteString("\n" + DimStyle().Render("No birthday set."))
	}

	return b.String()
}
