package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"movie-catalog-cli/catalog"
	"movie-catalog-cli/model"
	"movie-catalog-cli/service"
	"movie-catalog-cli/store"
)

// Options wires the dependencies of the root model. Zero values fall back to
// a default client, an in-memory store and a silent logger.
type Options struct {
	Client       *service.Client
	Store        store.Store
	Logger       hclog.Logger
	ProbePosters bool
	DetectDark   func() bool
}

type appModel struct {
	client *service.Client
	store  store.Store
	logger hclog.Logger
	probe  bool

	width  int
	height int

	movies  []model.Movie
	pager   catalog.Pager
	loading bool
	err     string

	search        textinput.Model
	sortKey       catalog.SortKey
	favoritesOnly bool
	favorites     catalog.Favorites
	darkMode      bool

	cursor   int
	selected *model.Movie
	detail   viewport.Model
	posters  map[string]posterState

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	pages   paginator.Model
	status  string
}

type pageMsg struct {
	page   int
	result model.MoviePage
	err    error
}

type posterProbeMsg struct {
	results []service.PosterStatus
}

type favoriteToggledMsg struct {
	id model.MovieID
}

type openDetailMsg struct {
	movie model.Movie
}

type statusMsg struct {
	text string
}

type errMsg struct {
	err error
}

func New(opts Options) tea.Model {
	m := appModel{
		client:  opts.Client,
		store:   opts.Store,
		logger:  opts.Logger,
		probe:   opts.ProbePosters,
		pager:   catalog.NewPager(),
		loading: true,
		sortKey: catalog.SortByTitle,
		posters: make(map[string]posterState),
		keys:    newKeyMap(),
	}
	if m.client == nil {
		m.client = service.NewClient(nil)
	}
	if m.store == nil {
		m.store = store.NewMemoryStore()
	}
	if m.logger == nil {
		m.logger = hclog.NewNullLogger()
	}
	detectDark := opts.DetectDark
	if detectDark == nil {
		detectDark = lipgloss.HasDarkBackground
	}

	dark, err := store.LoadDarkMode(m.store, detectDark)
	if err != nil {
		m.logger.Warn("failed to read dark mode preference", "error", err)
		dark = detectDark()
	}
	m.darkMode = dark

	favorites, err := store.LoadFavorites(m.store)
	if err != nil {
		m.logger.Warn("failed to read favorites", "error", err)
		favorites = catalog.NewFavorites()
	}
	m.favorites = favorites

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "Search by title..."
	ti.CharLimit = 120
	m.search = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp

	m.help = help.New()
	m.detail = viewport.New(0, 0)

	pages := paginator.New()
	pages.Type = paginator.Arabic
	pages.ArabicFormat = "Page %d of %d"
	m.pages = pages

	m.applyTheme()
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchPageCmd(m.pager.Page), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = min(48, max(10, msg.Width-12))
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageMsg:
		return m.applyPage(msg)

	case posterProbeMsg:
		for _, result := range msg.results {
			if result.OK() {
				m.posters[result.URL] = posterOK
				continue
			}
			m.posters[result.URL] = posterBroken
			m.logger.Debug("poster unavailable", "url", result.URL, "error", result.Err)
		}
		return m, nil

	case favoriteToggledMsg:
		m.favorites = m.favorites.Toggle(msg.id)
		if err := store.SaveFavorites(m.store, m.favorites); err != nil {
			m.logger.Error("failed to save favorites", "error", err)
		}
		m.clampCursor()
		m.refreshDetail()
		return m, nil

	case openDetailMsg:
		movie := msg.movie
		m.selected = &movie
		m.detail.GotoTop()
		m.refreshDetail()
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case errMsg:
		m.status = "Error: " + msg.err.Error()
		m.logger.Warn("action failed", "error", msg.err)
		return m, nil
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyPage replaces the movie list with a settled page response. Responses
// are applied in the order they settle, so a slow response for an earlier
// page can overwrite a newer one.
func (m appModel) applyPage(msg pageMsg) (tea.Model, tea.Cmd) {
	if msg.page != m.pager.Page {
		m.logger.Debug("applying response for a page that is no longer current", "response_page", msg.page, "page", m.pager.Page)
	}
	m.loading = false
	if msg.err != nil {
		m.err = msg.err.Error()
		m.logger.Error("failed to fetch movies", "page", msg.page, "error", msg.err)
		return m, nil
	}

	m.err = ""
	m.movies = msg.result.Movies
	if len(m.movies) > 0 {
		m.logger.Debug("sample movie", "id", m.movies[0].Id, "title", m.movies[0].Title())
	}
	current := m.pager.Page
	m.pager = m.pager.WithTotal(msg.result.TotalPages)
	m.clampCursor()

	cmds := []tea.Cmd{m.startPosterProbes()}
	if m.pager.Page != current {
		cmds = append(cmds, m.loadPage())
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.selected != nil {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.selected = nil
			return m, nil
		case key.Matches(msg, m.keys.OpenLink):
			return m, openURLCmd(service.LookupURL(m.selected.Title()))
		case key.Matches(msg, m.keys.Favorite):
			id := m.selected.Id
			return m.Update(favoriteToggledMsg{id: id})
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if m.search.Focused() {
		switch {
		case key.Matches(msg, m.keys.Clear):
			m.search.SetValue("")
			m.search.Blur()
			m.cursor = 0
			return m, nil
		case key.Matches(msg, m.keys.Done):
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.cursor = 0
		}
		return m, cmd
	}

	visible := m.visibleMovies()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.status = ""
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Sort):
		m.sortKey = m.sortKey.Next()
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.FavoritesOnly):
		m.favoritesOnly = !m.favoritesOnly
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.DarkMode):
		m.darkMode = !m.darkMode
		m.applyTheme()
		if err := store.SaveDarkMode(m.store, m.darkMode); err != nil {
			m.logger.Error("failed to save dark mode", "error", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		return m.goPage(m.pager.HasPrev(), m.pager.Prev())
	case key.Matches(msg, m.keys.NextPage):
		return m.goPage(m.pager.HasNext(), m.pager.Next())
	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		cmd := m.loadPage()
		return m, cmd
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, len(visible))
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, len(visible))
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols, len(visible))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols, len(visible))
		return m, nil
	}

	if m.loading || m.err != "" || len(visible) == 0 {
		return m, nil
	}
	c := m.cardAt(visible, m.cursor)
	if cmd := c.handleKey(msg, m.keys); cmd != nil {
		return m.Update(cmd())
	}
	return m, nil
}

// goPage moves to the given page and fetches it. Moving past either end is a
// no-op.
func (m appModel) goPage(allowed bool, next catalog.Pager) (tea.Model, tea.Cmd) {
	if !allowed {
		return m, nil
	}
	m.pager = next
	m.cursor = 0
	m.status = ""
	cmd := m.loadPage()
	return m, cmd
}

func (m *appModel) loadPage() tea.Cmd {
	m.loading = true
	m.err = ""
	return tea.Batch(m.fetchPageCmd(m.pager.Page), m.spinner.Tick)
}

func (m appModel) fetchPageCmd(page int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.FetchPage(context.Background(), page)
		return pageMsg{page: page, result: result, err: err}
	}
}

// startPosterProbes marks every unseen poster URL of the current page as
// checking and returns the command that probes them.
func (m *appModel) startPosterProbes() tea.Cmd {
	var urls []string
	for _, movie := range m.movies {
		if !movie.HasPoster() {
			continue
		}
		if _, seen := m.posters[movie.PosterPath]; seen {
			continue
		}
		if !m.probe {
			m.posters[movie.PosterPath] = posterOK
			continue
		}
		m.posters[movie.PosterPath] = posterChecking
		urls = append(urls, movie.PosterPath)
	}
	if len(urls) == 0 {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		return posterProbeMsg{results: client.ProbePosters(context.Background(), urls)}
	}
}

func (m appModel) visibleMovies() []model.Movie {
	return catalog.Derive(m.movies, catalog.Query{
		Search:        m.search.Value(),
		FavoritesOnly: m.favoritesOnly,
		Favorites:     m.favorites,
		Sort:          m.sortKey,
	})
}

func (m appModel) cardAt(movies []model.Movie, i int) card {
	movie := movies[i]
	return card{
		movie:    movie,
		favorite: m.favorites.Contains(movie.Id),
		selected: i == m.cursor,
		poster:   m.posters[movie.PosterPath],
		theme:    m.theme(),
		onFavorite: func() tea.Msg {
			return favoriteToggledMsg{id: movie.Id}
		},
		onOpen: func() tea.Msg {
			return openDetailMsg{movie: movie}
		},
	}
}

func (m *appModel) moveCursor(delta int, count int) {
	if count == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= count {
		return
	}
	m.cursor = next
}

func (m *appModel) clampCursor() {
	count := len(m.visibleMovies())
	if m.cursor >= count {
		m.cursor = max(0, count-1)
	}
}

func (m appModel) theme() theme {
	return themeFor(m.darkMode)
}

func (m *appModel) applyTheme() {
	t := m.theme()
	m.spinner.Style = lipgloss.NewStyle().Foreground(t.accent)
	m.search.PromptStyle = lipgloss.NewStyle().Foreground(t.accent).Bold(true)
	m.search.TextStyle = lipgloss.NewStyle().Foreground(t.text)
	m.search.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.muted)
	m.refreshDetail()
}

func (m appModel) columns() int {
	width := m.width
	if width == 0 {
		width = 80
	}
	return max(1, width/cardWidth)
}

func (m appModel) View() string {
	if m.selected != nil {
		return m.detailView()
	}

	sections := []string{
		m.headerView(),
		m.search.View(),
		"",
		m.bodyView(),
	}
	if pagination := m.paginationView(); pagination != "" {
		sections = append(sections, "", pagination)
	}
	sections = append(sections, "", m.footerView())
	return strings.Join(sections, "\n")
}

func (m appModel) headerView() string {
	t := m.theme()
	title := lipgloss.NewStyle().Foreground(t.accent).Bold(true).Render("Movie Database")

	mode := "☀ Light Mode"
	if m.darkMode {
		mode = "☾ Dark Mode"
	}
	favorites := "☆ Favorites"
	if m.favoritesOnly {
		favorites = "★ Favorites"
	}
	chips := []string{
		t.chip(mode, m.darkMode),
		t.chip(favorites, m.favoritesOnly),
		t.chip("Sort by "+m.sortKey.Label(), false),
	}
	if n := m.favorites.Len(); n > 0 {
		chips = append(chips, t.hint(fmt.Sprintf("%d saved", n)))
	}
	return title + "  " + strings.Join(chips, " ")
}

func (m appModel) bodyView() string {
	t := m.theme()
	switch {
	case m.loading:
		return lipgloss.NewStyle().Foreground(t.text).Render(m.spinner.View() + " Loading movies...")
	case m.err != "":
		return lipgloss.NewStyle().Foreground(t.errColor).Bold(true).Render("Error: " + m.err)
	}

	visible := m.visibleMovies()
	if len(visible) == 0 {
		return t.hint("No movies found.")
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(visible); start += cols {
		end := min(start+cols, len(visible))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.cardAt(visible, i).view())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return m.scrollRows(rows, m.cursor/cols)
}

// scrollRows keeps the row holding the cursor on screen when the grid is
// taller than the window.
func (m appModel) scrollRows(rows []string, cursorRow int) string {
	if m.height == 0 {
		return strings.Join(rows, "\n")
	}
	// header, search, pagination and footer take about eight lines
	fit := max(1, (m.height-8)/cardHeight)
	if len(rows) <= fit {
		return strings.Join(rows, "\n")
	}
	first := 0
	if cursorRow >= fit {
		first = cursorRow - fit + 1
	}
	last := min(len(rows), first+fit)
	return strings.Join(rows[first:last], "\n")
}

func (m appModel) paginationView() string {
	if m.pager.TotalPages <= 1 {
		return ""
	}
	t := m.theme()
	enabled := lipgloss.NewStyle().Foreground(t.accent).Bold(true)
	disabled := lipgloss.NewStyle().Foreground(t.muted).Faint(true)

	prev := disabled.Render("‹ Previous")
	if m.pager.HasPrev() {
		prev = enabled.Render("‹ Previous")
	}
	next := disabled.Render("Next ›")
	if m.pager.HasNext() {
		next = enabled.Render("Next ›")
	}

	pages := m.pages
	pages.TotalPages = m.pager.TotalPages
	pages.Page = m.pager.Page - 1
	label := lipgloss.NewStyle().Foreground(t.text).Render(pages.View())
	return prev + "   " + label + "   " + next
}

func (m appModel) footerView() string {
	t := m.theme()
	bindings := m.keys.gridHelp()
	if m.search.Focused() {
		bindings = m.keys.searchHelp()
	}
	footer := m.help.ShortHelpView(bindings)
	if m.status != "" {
		footer = t.hint(m.status) + "\n" + footer
	}
	return footer
}
