package export

import (
	"brd-wizard-be/pkg/scoring"
)

// Exporter renders a finished (or in-progress) BRD draft to one format.
type Exporter interface {
	// Export returns the document bytes, its content type, and a filename
	// suffix (extension without the dot).
	Export(title string, sections []Section, result *scoring.ScoreResult) ([]byte, string, string)
}

// ForFormat returns the exporter for a format name, defaulting to txt.
func ForFormat(format string) Exporter {
	switch format {
	case "md", "markdown":
		return MarkdownExporter{}
	default:
		return TxtExporter{}
	}
}
