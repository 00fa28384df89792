package state

import "strings"

// FooterText returns the footer content: a transient status line, when one is
// set and nothing is loading, stacked above the help line.
func FooterText(loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if loading || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
