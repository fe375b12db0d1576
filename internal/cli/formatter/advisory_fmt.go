package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const advisoryLabel = "RAIDEN: "

// FormatAdvisoryWelcome is the banner of the interactive advisory session.
func FormatAdvisoryWelcome() string {
	return StyleHeader.Render("RAIDEN ADVISORY") + "\n" +
		Dim("Ask about templates, fields or the TSUKUYOMI framework. /quit to leave.") + "\n"
}

// FormatAdvisoryReply highlights the RAIDEN label of a reply and wraps the
// answer to width. A width of zero disables wrapping.
func FormatAdvisoryReply(reply string, width int) string {
	body := strings.TrimPrefix(reply, advisoryLabel)
	if width > len(advisoryLabel) {
		body = lipgloss.NewStyle().Width(width - len(advisoryLabel)).Render(body)
	}
	if !strings.HasPrefix(reply, advisoryLabel) {
		return body
	}
	return StylePurple.Bold(true).Render(strings.TrimSpace(advisoryLabel)) + " " + body
}

// FormatAdvisoryQuestion echoes an operator question in the transcript.
func FormatAdvisoryQuestion(q string) string {
	return Dim("You: ") + q
}
