// Package ui provides styled terminal output for the musiccast CLI.
//
// Commands print a Header describing what they are about to do, then
// either the receiver's answer (PrintBody) or a Result box. Failures are
// rendered with the troubleshooting hint of the underlying receiver error.
//
// Styling uses Lipgloss. Colors are dropped automatically when stdout is
// not a terminal, so output stays readable when piped. JSON output
// (PrintJSON) is never styled.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Now Playing", "musiccast now-playing",
//	    ui.Param{Key: "Receiver", Value: dev.String()})
//	p.PrintBody(info.FormatDetailed())
//
// This package expects logging to be controlled via the MUSICCAST_LOG_LEVEL
// environment variable. When unset, zap logging is silent so the styled
// output is displayed cleanly.
package ui
