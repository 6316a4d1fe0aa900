package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	dark bool

	text          lipgloss.Color
	muted         lipgloss.Color
	accent        lipgloss.Color
	rating        lipgloss.Color
	favorite      lipgloss.Color
	favoriteOff   lipgloss.Color
	border        lipgloss.Color
	selected      lipgloss.Color
	errColor      lipgloss.Color
	chipBg        lipgloss.Color
	chipActiveBg  lipgloss.Color
	placeholderBg lipgloss.Color
	posterBg      lipgloss.Color
}

var (
	darkTheme = theme{
		dark:          true,
		text:          lipgloss.Color("252"),
		muted:         lipgloss.Color("245"),
		accent:        lipgloss.Color("39"),
		rating:        lipgloss.Color("220"),
		favorite:      lipgloss.Color("203"),
		favoriteOff:   lipgloss.Color("245"),
		border:        lipgloss.Color("238"),
		selected:      lipgloss.Color("33"),
		errColor:      lipgloss.Color("196"),
		chipBg:        lipgloss.Color("236"),
		chipActiveBg:  lipgloss.Color("136"),
		placeholderBg: lipgloss.Color("237"),
		posterBg:      lipgloss.Color("24"),
	}
	lightTheme = theme{
		text:          lipgloss.Color("235"),
		muted:         lipgloss.Color("242"),
		accent:        lipgloss.Color("27"),
		rating:        lipgloss.Color("136"),
		favorite:      lipgloss.Color("160"),
		favoriteOff:   lipgloss.Color("250"),
		border:        lipgloss.Color("250"),
		selected:      lipgloss.Color("27"),
		errColor:      lipgloss.Color("160"),
		chipBg:        lipgloss.Color("254"),
		chipActiveBg:  lipgloss.Color("229"),
		placeholderBg: lipgloss.Color("254"),
		posterBg:      lipgloss.Color("153"),
	}
)

func themeFor(dark bool) theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

func (t theme) chip(label string, active bool) string {
	bg := t.chipBg
	if active {
		bg = t.chipActiveBg
	}
	return lipgloss.NewStyle().
		Foreground(t.text).
		Background(bg).
		Padding(0, 1).
		Render(label)
}

func (t theme) hint(text string) string {
	return lipgloss.NewStyle().Foreground(t.muted).Faint(true).Render(text)
}
