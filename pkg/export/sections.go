package export

import (
	"strings"

	"brd-wizard-be/pkg/brd"
)

// Section is one composed block of the generated BRD document.
type Section struct {
	Title string
	Body  string
}

// BuildSections composes the document sections from the raw field map. The
// composition is a deterministic template; a SectionWriter may rewrite the
// bodies afterwards.
func BuildSections(fields map[string]string) []Section {
	return []Section{
		{Title: "Background", Body: strings.TrimSpace(fields[brd.FieldBackground])},
		{Title: "Impacts", Body: impactLines(fields)},
		{Title: "Journey Description", Body: strings.TrimSpace(fields[brd.FieldJourneyDesc])},
		{Title: "Expected Results", Body: strings.TrimSpace(fields[brd.FieldExpected])},
	}
}

// impactLines folds the narrower fields into one labeled block.
func impactLines(fields map[string]string) string {
	type pair struct {
		label string
		field string
	}
	pairs := []pair{
		{"Müşteri Grubu", brd.FieldCustomerGroup},
		{"Kanallar", brd.FieldChannels},
		{"Journey", brd.FieldJourney},
		{"Raporlama", brd.FieldReports},
		{"Trafik", brd.FieldTraffic},
		{"Privacy / Compliance", brd.FieldPrivacy},
	}

	var lines []string
	for _, p := range pairs {
		if v := strings.TrimSpace(fields[p.field]); v != "" {
			lines = append(lines, p.label+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}
