package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/services"
	"github.com/Dosada05/chess-tournaments/session"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))

	upcomingBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 1)
	liveBadge     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("203")).Padding(0, 1)

	joinActionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	joinedActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fullActionStyle   = mutedStyle

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("42")).
			Padding(0, 1)
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chess Tournaments"))
	b.WriteString("\n\n")

	switch m.session.State() {
	case session.StateLoading:
		b.WriteString(mutedStyle.Render("Loading tournaments..."))
		b.WriteString("\n")
		return b.String()

	case session.StateError:
		b.WriteString(errorStyle.Render(m.session.ErrorMessage()))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(helpLine(m.keys.Retry, m.keys.Quit)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.search.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Status: %s   Time control: %s\n",
		m.session.StatusLabel(), m.session.TimeControlLabel())
	b.WriteString(mutedStyle.Render(m.session.CountLabel()))
	b.WriteString("\n\n")

	cards := m.session.Cards()
	if len(cards) == 0 {
		b.WriteString(services.EmptyResultMessage)
		b.WriteString("\n")
	}
	for i, card := range cards {
		b.WriteString(m.renderCard(card, i == m.cursor))
		b.WriteString("\n")
	}

	if notice := m.session.Notice(); notice != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.search.Focused() {
		b.WriteString(mutedStyle.Render(helpLine(m.keys.SearchDone)))
	} else {
		b.WriteString(mutedStyle.Render(helpLine(
			m.keys.Up, m.keys.Down, m.keys.Join, m.keys.Search,
			m.keys.CycleStatus, m.keys.CycleTimeControl, m.keys.Quit,
		)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(card services.Card, selected bool) string {
	header := card.Name + "  " + statusBadge(card.Status) + "  " + string(card.TimeControl)
	lines := []string{
		header,
		mutedStyle.Render(card.StartsAt),
		m.bar.ViewAs(card.Fraction) + "  " + card.Players + " players",
		actionStyle(card).Render(card.Action),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// statusBadge renders the status in upper case.
func statusBadge(status models.TournamentStatus) string {
	label := strings.ToUpper(string(status))
	if status == models.StatusLive {
		return liveBadge.Render(label)
	}
	return upcomingBadge.Render(label)
}

func actionStyle(card services.Card) lipgloss.Style {
	switch {
	case card.Joined:
		return joinedActionStyle
	case !card.Joinable:
		return fullActionStyle
	}
	return joinActionStyle
}

func (m Model) selected() (services.Card, bool) {
	cards := m.session.Cards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return services.Card{}, false
	}
	return cards[m.cursor], true
}

func joinHelp(parts []string) string {
	return strings.Join(parts, " · ")
}
