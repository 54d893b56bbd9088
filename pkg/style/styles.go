// Package style defines the lipgloss styles used by relink's terminal
// output. Colors are adaptive so they stay readable on light and dark
// terminal themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a8c", Dark: "#8c8cff"}
	PatternColor = lipgloss.AdaptiveColor{Light: "#8c3a00", Dark: "#ffb86c"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#e6e6e6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8a8a8a"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#c00000", Dark: "#ff5f5f"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	IndexStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PatternStyle = lipgloss.NewStyle().
			Foreground(PatternColor)

	ReplacerStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// InertStyle marks trailing pattern or replacer entries that have no
	// partner and are never compiled.
	InertStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
