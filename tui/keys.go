package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Open          key.Binding
	Favorite      key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	Search        key.Binding
	Sort          key.Binding
	FavoritesOnly key.Binding
	DarkMode      key.Binding
	Reload        key.Binding
	Quit          key.Binding

	Close    key.Binding
	OpenLink key.Binding
	Scroll   key.Binding
	Done     key.Binding
	Clear    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Favorite:      key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space/x", "favorite")),
		PrevPage:      key.NewBinding(key.WithKeys("[", "p", "pgup"), key.WithHelp("[/p", "prev page")),
		NextPage:      key.NewBinding(key.WithKeys("]", "n", "pgdown"), key.WithHelp("]/n", "next page")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		FavoritesOnly: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites only")),
		DarkMode:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Reload:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Close:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "close")),
		OpenLink: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open on IMDb")),
		Scroll:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Done:     key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "done")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.Open, k.Favorite, k.PrevPage, k.NextPage, k.Search, k.Sort, k.FavoritesOnly, k.DarkMode, k.Reload, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Favorite, k.OpenLink, k.Close}
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Done, k.Clear}
}
