package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line of a header. Params render in the order given.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed before a command's output
type Header struct {
	Title   string  // e.g., "NOW PLAYING"
	Command string  // e.g., "musiccast now-playing"
	Params  []Param // e.g., Receiver, Model
	Width   int
}

// NewHeader creates a header sized to the terminal
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the width for rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		dividerWidth := width - 6 // border and padding
		divider := RenderHorizontalDivider(dividerWidth, "─")

		keyWidth := 0
		for _, p := range h.Params {
			if len(p.Key) > keyWidth {
				keyWidth = len(p.Key)
			}
		}

		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			key := HeaderParamKeyStyle.Render(p.Key + ":" + strings.Repeat(" ", keyWidth-len(p.Key)))
			lines = append(lines, key+" "+HeaderParamValueStyle.Render(p.Value))
		}

		content = lipgloss.JoinVertical(lipgloss.Left, content, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
