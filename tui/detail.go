package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"movie-catalog-cli/model"
	"movie-catalog-cli/service"
)

const (
	detailMaxWidth  = 72
	detailMaxHeight = 26
)

// detailSize returns the outer panel size and the viewport size inside it.
func (m appModel) detailSize() (int, int, int, int) {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}
	panelW := min(detailMaxWidth, max(30, width-4))
	panelH := min(detailMaxHeight, max(10, height-2))
	// border (2) + padding (2 cols, 0 rows) + help line and spacer (2 rows)
	return panelW, panelH, panelW - 6, panelH - 4
}

func (m *appModel) refreshDetail() {
	if m.selected == nil {
		return
	}
	_, _, vpW, vpH := m.detailSize()
	m.detail.Width = vpW
	m.detail.Height = vpH
	m.detail.SetContent(m.detailContent(*m.selected, vpW))
}

func (m appModel) detailContent(movie model.Movie, width int) string {
	t := m.theme()
	label := lipgloss.NewStyle().Foreground(t.text).Bold(true)
	value := lipgloss.NewStyle().Foreground(t.text)
	wrap := lipgloss.NewStyle().Foreground(t.text).Width(width)

	field := func(name string, v string) string {
		return label.Render(name+":") + " " + value.Render(v)
	}

	title := movie.Title()
	if !movie.HasTitle() {
		title = model.NotAvailable
	}
	heading := lipgloss.NewStyle().Foreground(t.accent).Bold(true).Width(width).Render(title)

	favorite := lipgloss.NewStyle().Foreground(t.favoriteOff).Render("♡ not in favorites")
	if m.favorites.Contains(movie.Id) {
		favorite = lipgloss.NewStyle().Foreground(t.favorite).Render("♥ in favorites")
	}

	lines := []string{heading, favorite, ""}
	if movie.HasPoster() {
		lines = append(lines, wrap.Render(label.Render("Poster:")+" "+movie.PosterPath))
	}
	lines = append(lines,
		field("Year", movie.Year()),
		field("Rating", movie.RatingLabel()),
		field("Language", movie.Language()),
		field("Genre", movie.Genre()),
		wrap.Render(label.Render("Overview:")+" "+movie.Description()),
		"",
		lipgloss.NewStyle().Foreground(t.accent).Underline(true).Width(width).Render("View on IMDb: "+service.LookupURL(movie.Title())),
	)
	return strings.Join(lines, "\n")
}

func (m appModel) detailView() string {
	t := m.theme()
	panelW, panelH, _, _ := m.detailSize()

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.detail.View(),
		"",
		m.help.ShortHelpView(m.keys.detailHelp()),
	)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.accent).
		Padding(0, 2).
		Width(panelW - 2).
		MaxHeight(panelH).
		Render(content)

	width, height := m.width, m.height
	if width == 0 || height == 0 {
		return panel
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
