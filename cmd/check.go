// Package cmd implements the command-line interface for rymflux.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/rymflux-cli/rymflux/icon"
	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// CheckDependencies verifies the availability of required system dependencies.
// The current implementation validates the presence of the configured media
// player binary in the system PATH.
func CheckDependencies() {
	binary := viper.GetString(key.Player)
	if binary == "" {
		binary = "mpv"
	}

	_, err := exec.LookPath(binary)
	if err != nil {
		printMissingDependencyError(binary)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
