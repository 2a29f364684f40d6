package export

import (
	"fmt"
	"strings"

	"brd-wizard-be/pkg/scoring"
)

// TxtExporter writes a plain-text BRD with underlined section headers.
type TxtExporter struct{}

var _ Exporter = TxtExporter{}

func (TxtExporter) Export(title string, sections []Section, result *scoring.ScoreResult) ([]byte, string, string) {
	var b strings.Builder

	header := titleOrDefault(title)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(header))))
	b.WriteString("\n\n")

	if result != nil {
		fmt.Fprintf(&b, "Skor: %d / %d\n\n", result.TotalScore, result.MaxTotal)
	}

	for _, section := range sections {
		b.WriteString(section.Title)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", len([]rune(section.Title))))
		b.WriteString("\n")
		body := strings.TrimSpace(section.Body)
		if body == "" {
			body = "(bos)"
		}
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	return []byte(b.String()), "text/plain; charset=utf-8", "txt"
}
