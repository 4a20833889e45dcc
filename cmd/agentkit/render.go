package agentkit

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

const renderWidth = 80

// renderAsset renders markdown assets with glamour. Other files, and any
// markdown glamour cannot handle, are returned unchanged.
func renderAsset(name string, content []byte) string {
	if !strings.EqualFold(filepath.Ext(name), ".md") {
		return string(content)
	}

	style := glamour.WithStandardStyle("notty")
	if stdoutIsTerminal() {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(renderWidth))
	if err != nil {
		return string(content)
	}
	rendered, err := renderer.Render(string(content))
	if err != nil {
		return string(content)
	}
	return rendered
}
