// SPDX-License-Identifier: MPL-2.0

package render

import (
	"github.com/charmbracelet/glamour"
)

// Options configures terminal rendering.
type Options struct {
	// Width is the word wrap width (0 for no wrap).
	Width int
	// Plain disables styling and returns content unchanged.
	Plain bool
}

// Markdown renders markdown content for the terminal using glamour.
func Markdown(content string, opts Options) (string, error) {
	if opts.Plain {
		return content, nil
	}

	rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}

// Code wraps content in a fenced code block and renders it as markdown,
// giving syntax highlighting for the named language.
func Code(content, language string, opts Options) (string, error) {
	if opts.Plain {
		return content, nil
	}

	block := "```" + language + "\n" + content + "\n```"
	return Markdown(block, opts)
}
