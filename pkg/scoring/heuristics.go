package scoring

import (
	"regexp"
	"strings"

	"brd-wizard-be/pkg/brd"
)

// Guided question ids emitted by the heuristics. The UI resolves ids to text;
// the engine only moves ids around.
const (
	QBackgroundEmpty        = "Q_BACKGROUND_EMPTY"
	QBackgroundMoreDetail   = "Q_BACKGROUND_MORE_DETAIL"
	QBackgroundMoreSpecific = "Q_BACKGROUND_MORE_SPECIFIC"

	QExpectedEmpty     = "Q_EXPECTED_RESULTS_EMPTY"
	QExpectedAddTarget = "Q_EXPECTED_RESULTS_ADD_TARGET"

	QCustomerGroupEmpty   = "Q_CUSTOMER_GROUP_EMPTY"
	QCustomerGroupSpecify = "Q_CUSTOMER_GROUP_SPECIFY"

	QChannelsEmpty         = "Q_CHANNELS_EMPTY"
	QChannelsImpactExplain = "Q_CHANNELS_IMPACT_EXPLAIN"

	QJourneyEmpty       = "Q_JOURNEY_EMPTY"
	QJourneyNewExisting = "Q_JOURNEY_NEW_EXISTING"

	QJDescEmpty       = "Q_JDESC_EMPTY"
	QJDescBeforeAfter = "Q_JDESC_BEFORE_AFTER"
	QJDescEdgeCase    = "Q_JDESC_EDGE_CASE"

	QReportsEmpty = "Q_REPORTS_EMPTY"

	QTrafficEmpty    = "Q_TRAFFIC_EMPTY"
	QTrafficEstimate = "Q_TRAFFIC_ESTIMATE"

	QPrivacyMin = "Q_PRIVACY_MIN"
)

// vagueWordsTR flags non-measurable phrasing in Background answers.
var vagueWordsTR = []string{
	"uygun", "mümkün", "hızlı", "asap", "optimum", "gerektiğinde", "user friendly",
	"makul", "iyileştir", "geliştir", "daha iyi", "kolay", "en kısa", "verimli",
}

var (
	measurableRe = regexp.MustCompile(`(%|sn|dk|adet|oran|kpi)`)
	digitRe      = regexp.MustCompile(`\d`)
)

// Scorer maps one field's text to (score, findings, follow-up question ids).
// Scorers are pure and total: any string input, including empty, yields a
// deterministic result without error.
type Scorer func(value string) (int, []string, []string)

// fieldScorers wires each canonical field to its hand-tuned heuristic.
var fieldScorers = map[string]Scorer{
	brd.FieldBackground:    scoreBackground,
	brd.FieldExpected:      scoreExpectedResults,
	brd.FieldCustomerGroup: scoreCustomerGroup,
	brd.FieldChannels:      scoreImpactedChannels,
	brd.FieldJourney:       scoreImpactedJourney,
	brd.FieldJourneyDesc:   scoreJourneysDescription,
	brd.FieldReports:       scoreReportsNeeded,
	brd.FieldTraffic:       scoreTrafficForecast,
}

func charLen(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}

func containsAny(text string, words []string) bool {
	t := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(t, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func scoreBackground(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Background alanı boş."}, []string{QBackgroundEmpty}
	}
	if charLen(val) < 50 {
		return 5, []string{"Background çok kısa."}, []string{QBackgroundMoreDetail}
	}
	if containsAny(val, vagueWordsTR) {
		return 13, []string{"Belirsiz ifadeler var."}, []string{QBackgroundMoreSpecific}
	}
	return 15, nil, nil
}

func scoreExpectedResults(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Expected Results alanı boş."}, []string{QExpectedEmpty}
	}
	if measurableRe.MatchString(strings.ToLower(val)) {
		return 15, nil, nil
	}
	return 10, []string{"Ölçülebilir hedef yok."}, []string{QExpectedAddTarget}
}

func scoreCustomerGroup(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Target Customer Group boş."}, []string{QCustomerGroupEmpty}
	}
	if strings.Contains(strings.ToLower(val), "tüm") {
		return 2, []string{"Müşteri grubu çok genel."}, []string{QCustomerGroupSpecify}
	}
	return 5, nil, nil
}

func scoreImpactedChannels(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Impacted Channels boş."}, []string{QChannelsEmpty}
	}
	if len(strings.Fields(val)) < 3 {
		return 5, []string{"Kanal detayları zayıf."}, []string{QChannelsImpactExplain}
	}
	return 10, nil, nil
}

func scoreImpactedJourney(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Impacted Journey boş."}, []string{QJourneyEmpty}
	}
	if containsAny(val, []string{"yeni", "new", "mevcut", "existing"}) {
		return 5, nil, nil
	}
	return 3, []string{"Journey tipi net değil."}, []string{QJourneyNewExisting}
}

func scoreJourneysDescription(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Journey Description boş."}, []string{QJDescEmpty}
	}
	if charLen(val) < 120 {
		return 20, []string{"Journey açıklaması zayıf."}, []string{QJDescBeforeAfter}
	}
	if containsAny(val, []string{"edge", "hata", "timeout", "error"}) {
		return 40, nil, nil
	}
	return 35, []string{"Edge-case eksik."}, []string{QJDescEdgeCase}
}

func scoreReportsNeeded(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Reports Needed boş."}, []string{QReportsEmpty}
	}
	if strings.Contains(strings.ToLower(val), "yok") {
		return 3, nil, nil
	}
	return 5, nil, nil
}

func scoreTrafficForecast(val string) (int, []string, []string) {
	if charLen(val) == 0 {
		return 0, []string{"Traffic Forecast boş."}, []string{QTrafficEmpty}
	}
	if digitRe.MatchString(val) {
		return 5, nil, nil
	}
	return 3, []string{"Tahmin sayısal değil."}, []string{QTrafficEstimate}
}
