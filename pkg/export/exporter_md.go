package export

import (
	"brd-wizard-be/pkg/scoring"
)

// MarkdownExporter reuses the preview rendering as a downloadable file.
type MarkdownExporter struct{}

var _ Exporter = MarkdownExporter{}

func (MarkdownExporter) Export(title string, sections []Section, result *scoring.ScoreResult) ([]byte, string, string) {
	return []byte(Preview(title, sections, result)), "text/markdown; charset=utf-8", "md"
}
