package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorSpanOpenPrefixConstant = "<color="
	colorSpanOpenSuffixConstant = ">"
	colorSpanCloseConstant      = "</color>"
)

var colorStylesByName = map[string]lipgloss.Style{
	"lime":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"green":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"red":    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"orange": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"grey":   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"gray":   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// Renderer converts diagnostic text containing inline <color=...> spans into
// terminal output. Plain mode strips the spans instead of styling them.
type Renderer struct {
	plain bool
}

// NewRenderer constructs a Renderer. When plain is true the renderer removes
// color spans without applying terminal styles.
func NewRenderer(plain bool) *Renderer {
	return &Renderer{plain: plain}
}

// Render resolves every well-formed color span in message. Malformed spans
// and unknown color names pass through as unstyled text; Render never fails.
func (renderer *Renderer) Render(message string) string {
	var rendered strings.Builder

	remaining := message
	for {
		openIndex := strings.Index(remaining, colorSpanOpenPrefixConstant)
		if openIndex < 0 {
			rendered.WriteString(remaining)
			return rendered.String()
		}

		nameStart := openIndex + len(colorSpanOpenPrefixConstant)
		nameEnd := strings.Index(remaining[nameStart:], colorSpanOpenSuffixConstant)
		if nameEnd < 0 {
			rendered.WriteString(remaining)
			return rendered.String()
		}
		nameEnd += nameStart

		closeIndex := strings.Index(remaining[nameEnd:], colorSpanCloseConstant)
		if closeIndex < 0 {
			rendered.WriteString(remaining)
			return rendered.String()
		}
		closeIndex += nameEnd

		rendered.WriteString(remaining[:openIndex])
		colorName := strings.ToLower(strings.TrimSpace(remaining[nameStart:nameEnd]))
		spanText := remaining[nameEnd+len(colorSpanOpenSuffixConstant) : closeIndex]
		rendered.WriteString(renderer.renderSpan(colorName, spanText))

		remaining = remaining[closeIndex+len(colorSpanCloseConstant):]
	}
}

func (renderer *Renderer) renderSpan(colorName string, spanText string) string {
	if renderer.plain {
		return spanText
	}

	style, styleExists := colorStylesByName[colorName]
	if !styleExists {
		return spanText
	}
	return style.Render(spanText)
}
