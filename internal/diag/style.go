package diag

import "github.com/pterm/pterm"

// Color/style palette, lifted from the teacher's logging/display.go.
var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG    = successColorFG
	infoStyleBG    = successStyleBG
)

// PrintErrorMessage prints a standalone Go error to the console, outside of
// the diagnostics Sink machinery: used by the CLI driver for usage/config
// errors that happen before a Sink even exists.
func PrintErrorMessage(tag string, err error) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the console, e.g. the
// tool's version string.
func PrintInfoMessage(tag, msg string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}
