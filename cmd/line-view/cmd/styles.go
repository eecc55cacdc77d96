package cmd

import "github.com/charmbracelet/lipgloss"

// Styles for rendered output, in the vein of the interactive frontend's
// palette: titles stand out, warnings are loud.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// renderError formats a fatal CLI error for stderr.
func renderError(err error) string {
	return errorStyle.Render("error") + ": " + err.Error()
}
