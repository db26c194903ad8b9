package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorEnabled reports whether stdout is a terminal; styled output is
// disabled when piping.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return render(lipgloss.NewStyle().Foreground(lipgloss.Color("6")), "* "+branchName)
	}
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("12")), "  "+branchName)
}

// ColorStaged colors a staged status entry
func ColorStaged(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("2")), text)
}

// ColorUnstaged colors an unstaged status entry
func ColorUnstaged(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("3")), text)
}

// ColorUntracked colors an untracked status entry
func ColorUntracked(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("1")), text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("8")), text)
}

// ColorHash colors a commit hash
func ColorHash(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("3")), text)
}
