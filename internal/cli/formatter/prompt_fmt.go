package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/raiden/internal/domain"
)

// FormatPrompt frames a generated prompt with its template name and marking.
func FormatPrompt(templateName, classification, prompt string) string {
	title := templateName
	if title == "" {
		title = "Prompt"
	}
	return ClassificationBanner(classification) + "\n" + RenderBox(title, prompt) + "\n"
}

// FormatHistory renders the history newest first.
func FormatHistory(items []domain.PromptHistoryItem, now time.Time) string {
	if len(items) == 0 {
		return Dim("No prompt history.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, h := range items {
		rows = append(rows, []string{
			h.ID,
			Truncate(h.Name, 60),
			h.TemplateKey,
			HumanTimestamp(h.Timestamp, now),
		})
	}
	return RenderTable([]string{"ID", "Name", "Template", "When"}, rows)
}

// FormatHistoryItem renders one history entry with its snapshot.
func FormatHistoryItem(item domain.PromptHistoryItem, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("History Entry"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  ID:       %s\n", item.ID)
	fmt.Fprintf(&b, "  Name:     %s\n", Bold(item.Name))
	fmt.Fprintf(&b, "  Template: %s\n", item.TemplateKey)
	fmt.Fprintf(&b, "  When:     %s\n\n", HumanTimestamp(item.Timestamp, now))
	b.WriteString(FormatConfiguration(item.FormData))
	return b.String()
}
