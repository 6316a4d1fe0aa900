package tui

import (
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

var openURLFn = openURL

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURLFn(url); err != nil {
			return errMsg{err: fmt.Errorf("failed to open browser: %w", err)}
		}
		return statusMsg{text: "Opened " + url}
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}
