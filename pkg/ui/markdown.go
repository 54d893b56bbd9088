package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown content for terminal display using
// glamour with style auto-detection. On any rendering error the raw
// content is returned unchanged.
func RenderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
