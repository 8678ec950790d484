package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"buildway.dev/buildway/internal/branchpath"
	"buildway.dev/buildway/internal/buildver"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	channelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// ColorEnabled reports whether styled output should be emitted
func ColorEnabled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func render(style lipgloss.Style, text string) string {
	if !ColorEnabled() {
		return text
	}
	return style.Render(text)
}

// FormatSummary renders the derivation result for one build as aligned
// label/value lines.
func FormatSummary(branch string, quad buildver.Quad, folders branchpath.Folders) string {
	var b strings.Builder

	writeLine := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", render(labelStyle, fmt.Sprintf("%-24s", label)), value)
	}

	writeLine("branch", branch)
	writeLine("version", render(versionStyle, quad.String()))
	writeLine("branchFolder", folders.BranchFolder)
	writeLine("branchVersionFolder", folders.BranchVersionFolder)

	if folders.Deployable() {
		writeLine("channel", render(channelStyle, folders.Channel))
		writeLine("channelVersionFolder", folders.ChannelVersionFolder)
		writeLine("channelVersionRoot", folders.ChannelVersionFolderRoot)
	} else {
		writeLine("channel", render(mutedStyle, folders.Channel+" (not deployable)"))
	}

	return b.String()
}
