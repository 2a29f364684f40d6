// Package export renders a BRD draft into shareable documents.
package export

import (
	"fmt"
	"strings"

	"brd-wizard-be/pkg/scoring"
)

// Preview renders the composed document as markdown, including the score
// summary, for in-conversation display.
func Preview(title string, sections []Section, result *scoring.ScoreResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", titleOrDefault(title))

	if result != nil {
		fmt.Fprintf(&b, "**Skor:** %d / %d", result.TotalScore, result.MaxTotal)
		if result.SubmitAllowed {
			b.WriteString(" (gönderilebilir)\n\n")
		} else {
			b.WriteString("\n\n")
			for _, blocker := range result.SubmitBlockers {
				fmt.Fprintf(&b, "- %s\n", blocker)
			}
			b.WriteString("\n")
		}
	}

	for _, section := range sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		if strings.TrimSpace(section.Body) == "" {
			b.WriteString("_(henüz doldurulmadı)_\n\n")
			continue
		}
		b.WriteString(section.Body)
		b.WriteString("\n\n")
	}

	return b.String()
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return "BRD Taslağı"
	}
	return title
}
