package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"movie-catalog-cli/model"
)

func testCard(movie model.Movie, poster posterState) card {
	return card{
		movie:  movie,
		poster: poster,
		theme:  lightTheme,
		onFavorite: func() tea.Msg {
			return favoriteToggledMsg{id: movie.Id}
		},
		onOpen: func() tea.Msg {
			return openDetailMsg{movie: movie}
		},
	}
}

func TestCardPlaceholderWhenPosterMissing(t *testing.T) {
	c := testCard(testMovie("a", "Alien", 8.5), posterUnchecked)
	if !strings.Contains(c.view(), "No Image") {
		t.Fatalf("expected placeholder, got %q", c.view())
	}
}

func TestCardBrokenPosterLeavesBlankSlot(t *testing.T) {
	movie := testMovie("a", "Alien", 8.5)
	movie.PosterPath = "https://img.example.com/missing.jpg"
	c := testCard(movie, posterBroken)

	if strings.Contains(c.view(), "No Image") {
		t.Fatal("expected no placeholder for a broken poster")
	}
	if got := strings.TrimSpace(c.posterView()); got != "" {
		t.Fatalf("expected blank poster slot, got %q", got)
	}
}

func TestCardLoadedPosterNamesHost(t *testing.T) {
	movie := testMovie("a", "Alien", 8.5)
	movie.PosterPath = "https://img.example.com/a.jpg"
	c := testCard(movie, posterOK)

	if !strings.Contains(c.posterView(), "img.example.com") {
		t.Fatalf("expected poster host, got %q", c.posterView())
	}
}

func TestCardFallbacks(t *testing.T) {
	title := "Untitled"
	c := testCard(model.Movie{Id: "x", OriginalTitle: &title}, posterUnchecked)
	view := c.view()

	for _, want := range []string{"No description", "Year:", "N/A", "Rating:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in card, got %q", want, view)
		}
	}
}

func TestCardFavoriteGlyph(t *testing.T) {
	c := testCard(testMovie("a", "Alien", 8.5), posterUnchecked)
	if !strings.Contains(c.view(), "♡") {
		t.Fatal("expected empty heart")
	}
	c.favorite = true
	if !strings.Contains(c.view(), "♥") {
		t.Fatal("expected filled heart")
	}
}

func TestCardKeysEmitOneEvent(t *testing.T) {
	keys := newKeyMap()
	c := testCard(testMovie("a", "Alien", 8.5), posterUnchecked)

	cmd := c.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, keys)
	if cmd == nil {
		t.Fatal("expected favorite command")
	}
	if msg, ok := cmd().(favoriteToggledMsg); !ok || msg.id != "a" {
		t.Fatalf("expected favorite toggle for a, got %#v", cmd())
	}

	cmd = c.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if cmd == nil {
		t.Fatal("expected open command")
	}
	if msg, ok := cmd().(openDetailMsg); !ok || msg.movie.Id != "a" {
		t.Fatalf("expected open detail for a, got %#v", cmd())
	}

	if cmd := c.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, keys); cmd != nil {
		t.Fatal("expected unbound key to do nothing")
	}
}

func TestClampLinesKeepsExactLineCount(t *testing.T) {
	short := clampLines("Heat", 10, 3)
	if got := len(strings.Split(short, "\n")); got != 3 {
		t.Fatalf("expected 3 lines, got %d", got)
	}

	long := clampLines(strings.Repeat("word ", 40), 10, 2)
	lines := strings.Split(long, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected truncated last line, got %q", lines[1])
	}
}
