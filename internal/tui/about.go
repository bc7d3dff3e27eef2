package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/navigator"
	"github.com/travisdwitt/oakview/internal/team"
)

const memberCardWidth = 34

func (m model) renderAboutSection() string {
	title := m.sectionTitle(navigator.SectionAbout, "About Us")
	subtitle := subtitleStyle.Render("Meet the team behind the Oakland data explorer")

	var cards []string
	for _, member := range team.Roster() {
		content := titleStyle.Render(member.Name) + "\n" +
			accentStyle(navigator.SectionAbout).Render(member.Role) + "\n\n" +
			member.PlainBio()
		if links := memberLinks(member); links != "" {
			content += "\n\n" + subtitleStyle.Render(links)
		}
		cards = append(cards, cardStyle.Width(memberCardWidth).Render(content))
	}

	perRow := max(1, m.width/(memberCardWidth+3))
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(len(cards), i+perRow)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title, subtitle, ""}, rows...)...)
}

func memberLinks(member team.Member) string {
	var parts []string
	for _, l := range member.Links() {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, " · ")
}
