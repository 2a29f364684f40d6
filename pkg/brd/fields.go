package brd

import "strings"

// Canonical BRD field names. Scoring, selection and the session store all key
// off these exact strings.
const (
	FieldBackground    = "Background"
	FieldExpected      = "Expected Results"
	FieldCustomerGroup = "Target Customer Group"
	FieldChannels      = "Impacted Channels"
	FieldJourney       = "Impacted Journey"
	FieldJourneyDesc   = "Journeys Description"
	FieldReports       = "Reports Needed"
	FieldTraffic       = "Traffic Forecast"
	FieldPrivacy       = "Privacy / Compliance"
)

// Fields is the declared field set in declaration order. Privacy is a gate
// field: required for submission but excluded from the numeric total.
var Fields = []string{
	FieldBackground,
	FieldExpected,
	FieldCustomerGroup,
	FieldChannels,
	FieldJourney,
	FieldJourneyDesc,
	FieldReports,
	FieldTraffic,
	FieldPrivacy,
}

// FieldMax holds the per-field score ceiling. Privacy is intentionally absent.
var FieldMax = map[string]int{
	FieldBackground:    15,
	FieldExpected:      15,
	FieldCustomerGroup: 5,
	FieldChannels:      10,
	FieldJourney:       5,
	FieldJourneyDesc:   40,
	FieldReports:       5,
	FieldTraffic:       5,
}

const (
	// SubmitThreshold is the minimum total score for submission.
	SubmitThreshold = 70
	// WeakRatio marks a field as weak when score < ratio * max.
	WeakRatio = 0.7
)

// MaxTotal returns the fixed maximum total score (100).
func MaxTotal() int {
	total := 0
	for _, max := range FieldMax {
		total += max
	}
	return total
}

// FieldOrder returns the deterministic wizard order: Background always first,
// Privacy always last, everything else in declaration order.
func FieldOrder() []string {
	order := make([]string, 0, len(Fields))
	order = append(order, FieldBackground)
	for _, f := range Fields {
		if f == FieldBackground || f == FieldPrivacy {
			continue
		}
		order = append(order, f)
	}
	order = append(order, FieldPrivacy)
	return order
}

// DefaultFields returns a fields map with every canonical field set to the
// empty string (the canonical "unset" value).
func DefaultFields() map[string]string {
	fields := make(map[string]string, len(Fields))
	for _, f := range Fields {
		fields[f] = ""
	}
	return fields
}

// IsEmpty reports whether a field value counts as unset.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}
