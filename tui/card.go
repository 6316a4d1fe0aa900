package tui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movie-catalog-cli/model"
)

const (
	cardWidth      = 32
	cardInnerWidth = cardWidth - 4
	cardHeight     = 16
	posterLines    = 5
	titleLines     = 2
	overviewLines  = 3
)

type posterState int

const (
	posterUnchecked posterState = iota
	posterChecking
	posterOK
	posterBroken
)

// card renders one movie and maps keys to its two events. It holds no state
// of its own; the root rebuilds cards on every render.
type card struct {
	movie    model.Movie
	favorite bool
	selected bool
	poster   posterState
	theme    theme

	onFavorite func() tea.Msg
	onOpen     func() tea.Msg
}

// handleKey returns the command for the event the key triggers. The favorite
// key never also opens the detail view.
func (c card) handleKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Favorite):
		if c.onFavorite == nil {
			return nil
		}
		return c.onFavorite
	case key.Matches(msg, keys.Open):
		if c.onOpen == nil {
			return nil
		}
		return c.onOpen
	}
	return nil
}

func (c card) view() string {
	t := c.theme
	text := lipgloss.NewStyle().Foreground(t.text)
	label := text.Bold(true)

	glyph := lipgloss.NewStyle().Foreground(t.favoriteOff).Render("♡")
	if c.favorite {
		glyph = lipgloss.NewStyle().Foreground(t.favorite).Bold(true).Render("♥")
	}
	top := lipgloss.NewStyle().Width(cardInnerWidth).Align(lipgloss.Right).Render(glyph)

	title := lipgloss.NewStyle().
		Foreground(t.text).
		Bold(true).
		Width(cardInnerWidth).
		Align(lipgloss.Center).
		Render(clampLines(c.movie.Title(), cardInnerWidth, titleLines))

	overview := lipgloss.NewStyle().
		Foreground(t.muted).
		Italic(true).
		Width(cardInnerWidth).
		Align(lipgloss.Center).
		Render(clampLines(c.movie.Description(), cardInnerWidth, overviewLines))

	rating := lipgloss.NewStyle().Foreground(t.rating).Bold(true)

	body := lipgloss.JoinVertical(lipgloss.Left,
		top,
		c.posterView(),
		title,
		overview,
		spread(label.Render("Year:"), text.Render(c.movie.Year()), cardInnerWidth),
		spread(label.Render("Genre:"), c.genreChip(), cardInnerWidth),
		spread(rating.Render("★ Rating:"), rating.Render(c.movie.RatingLabel()), cardInnerWidth),
	)

	border := lipgloss.RoundedBorder()
	borderColor := t.border
	if c.selected {
		border = lipgloss.ThickBorder()
		borderColor = t.selected
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Render(body)
}

// posterView draws the poster slot. A missing URL gets the "No Image"
// placeholder; a URL that failed to load leaves the slot blank.
func (c card) posterView() string {
	slot := lipgloss.NewStyle().
		Width(cardInnerWidth).
		Height(posterLines).
		Align(lipgloss.Center, lipgloss.Center)

	if !c.movie.HasPoster() {
		return slot.
			Background(c.theme.placeholderBg).
			Foreground(c.theme.muted).
			Render("No Image")
	}
	switch c.poster {
	case posterBroken:
		return slot.Render("")
	case posterUnchecked, posterChecking:
		return slot.
			Background(c.theme.posterBg).
			Foreground(c.theme.muted).
			Render("…")
	default:
		return slot.
			Background(c.theme.posterBg).
			Foreground(c.theme.text).
			Render(truncate("▣ "+posterHost(c.movie.PosterPath), cardInnerWidth-2))
	}
}

func (c card) genreChip() string {
	return lipgloss.NewStyle().
		Foreground(c.theme.muted).
		Background(c.theme.placeholderBg).
		Padding(0, 1).
		Render(c.movie.Genre())
}

func posterHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "poster"
	}
	return u.Host
}

// spread puts left and right at opposite ends of a line of the given width.
func spread(left string, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// clampLines wraps text to width and keeps at most n lines, always returning
// exactly n lines so cards line up.
func clampLines(text string, width int, n int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) > n {
		lines = lines[:n]
		lines[n-1] = truncate(lines[n-1]+"…", width)
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
