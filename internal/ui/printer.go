package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer writes styled output for CLI commands
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer that writes to w. If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w, width: GetTerminalWidth()}
}

// Width returns the width used for boxes
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintBody prints a preformatted block, indented
func (p *Printer) PrintBody(body string) {
	p.Println(BodyStyle.Render(strings.TrimRight(body, "\n")))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Param) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints a failure box. hint may span several lines; each
// becomes one troubleshooting line.
func (p *Printer) PrintError(title string, err error, hint string) {
	var tips []string
	if strings.TrimSpace(hint) != "" {
		tips = strings.Split(strings.TrimRight(hint, "\n"), "\n")
	}
	p.Println(NewFailureResult(title, err, tips).SetWidth(p.width).Render())
}

// PrintJSON writes v as indented JSON with no styling
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
