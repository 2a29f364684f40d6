package constant

import (
	"brd-wizard-be/pkg/brd"
	"brd-wizard-be/pkg/scoring"
)

// Field update provenance tags (audit trail).
const (
	SourceGuided = "guided"
	SourcePDF    = "pdf"
	SourceRAG    = "rag"
	SourceManual = "manual"
)

// Sentinel next_field values used while the PDF intake gate is open. The UI
// switches between the yes/no prompt and the uploader based on these.
const (
	IntakeField    = "__INTAKE__"
	UploadPDFField = "__UPLOAD_PDF__"
)

// Intake gate question ids (not produced by the scoring engine).
const (
	QIntakeHasSlides = "Q_INTAKE_HAS_SLIDES"
	QIntakeYesNo     = "Q_INTAKE_YES_NO"
	QUploadPDF       = "Q_UPLOAD_PDF"
)

// QuestionsTR maps question ids to the Turkish prompt text shown to the user.
var QuestionsTR = map[string]string{
	scoring.QBackgroundEmpty:        "Mevcut durumu ve problemi 1–2 cümle ile anlatabilir misiniz?",
	scoring.QBackgroundMoreDetail:   "Mevcut süreçteki ana pain point nedir? Biraz daha detay ekleyebilir misiniz?",
	scoring.QBackgroundMoreSpecific: "Problemi daha spesifik ve mümkünse ölçülebilir hale getirebilir misiniz?",

	scoring.QExpectedEmpty:     "Bu değişiklikle beklenen somut sonuç nedir?",
	scoring.QExpectedAddTarget: "Hedefi ölçülebilir yazabilir misiniz? (örn. X% azalt, Z sn altı)",

	scoring.QCustomerGroupEmpty:   "Hangi müşteri segmenti/grubu etkilenecek?",
	scoring.QCustomerGroupSpecify: "‘Tüm müşteriler’ yerine segment belirtebilir misiniz?",

	scoring.QChannelsEmpty:         "Hangi kanallar etkilenecek?",
	scoring.QChannelsImpactExplain: "Bu kanallar nasıl etkilenecek?",

	scoring.QJourneyEmpty:       "Hangi journey etkilenecek?",
	scoring.QJourneyNewExisting: "Bu mevcut bir journey mi yoksa yeni mi?",

	scoring.QJDescEmpty:       "Journey akışını anlatır mısınız? As-is / To-be şeklinde.",
	scoring.QJDescBeforeAfter: "Mevcut ve hedef akış arasındaki farklar neler?",
	scoring.QJDescEdgeCase:    "Önemli edge-case’ler neler?",

	scoring.QReportsEmpty: "Bu değişiklik için rapor ihtiyacı var mı?",

	scoring.QTrafficEmpty:    "Beklenen trafik/kullanım değişimi var mı?",
	scoring.QTrafficEstimate: "Tahmini sayısal olarak paylaşabilir misiniz?",

	scoring.QPrivacyMin: "Bu kapsamda kişisel veri işlenecek mi? (Evet/Hayır, kısaca açıklayın)",

	QIntakeHasSlides: "Hazır bir slayt sunumunuz var mı? Varsa Evet yazın, ardından PDF yükleyin. Yoksa Hayır yazıp devam edebilirsiniz.",
	QIntakeYesNo:     "Lütfen sadece Evet veya Hayır yazın.",
	QUploadPDF:       "PDF dosyanızı şimdi yükleyin. Özetleyip Background alanına ekleyeceğim. PDF yoksa Hayır yazıp devam edebilirsiniz.",
}

// ResolveQuestions maps ids to display text, falling back to the id itself for
// unknown ids so the UI never renders a blank bubble.
func ResolveQuestions(ids []string) []string {
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		if text, ok := QuestionsTR[id]; ok {
			texts = append(texts, text)
		} else {
			texts = append(texts, id)
		}
	}
	return texts
}

// FieldDescriptionsTR feeds the normalizer prompt.
var FieldDescriptionsTR = map[string]string{
	brd.FieldBackground:    "Mevcut durum ve problem özeti.",
	brd.FieldExpected:      "Beklenen somut sonuçlar ve başarı ölçütü.",
	brd.FieldCustomerGroup: "Etkilenen müşteri segmenti.",
	brd.FieldChannels:      "Etkilenen kanallar (app/web/call center/store/API vb.).",
	brd.FieldJourney:       "Etkilenen journey (mevcut/yeni).",
	brd.FieldJourneyDesc:   "As-is ve To-be akış açıklaması; edge-case dahil.",
	brd.FieldReports:       "İhtiyaç duyulan raporlar / metrikler.",
	brd.FieldTraffic:       "Beklenen trafik / kullanım tahmini.",
	brd.FieldPrivacy:       "Kişisel veri / KVKK-GDPR / uyumluluk etkisi.",
}

// RelatedFields limits how much session context is sent to the LLM per field.
var RelatedFields = map[string][]string{
	brd.FieldBackground:    {brd.FieldBackground, brd.FieldJourney, brd.FieldChannels, brd.FieldCustomerGroup},
	brd.FieldExpected:      {brd.FieldExpected, brd.FieldReports, brd.FieldTraffic},
	brd.FieldCustomerGroup: {brd.FieldCustomerGroup, brd.FieldChannels, brd.FieldJourney},
	brd.FieldChannels:      {brd.FieldChannels, brd.FieldJourney, brd.FieldCustomerGroup},
	brd.FieldJourney:       {brd.FieldJourney, brd.FieldJourneyDesc, brd.FieldChannels},
	brd.FieldJourneyDesc:   {brd.FieldJourneyDesc, brd.FieldJourney, brd.FieldChannels},
	brd.FieldReports:       {brd.FieldReports, brd.FieldExpected},
	brd.FieldTraffic:       {brd.FieldTraffic, brd.FieldChannels, brd.FieldJourney},
	brd.FieldPrivacy:       {brd.FieldPrivacy, brd.FieldBackground, brd.FieldChannels, brd.FieldJourney},
}

// FieldQueries are the retrieval queries used when pulling context snippets
// for a field from the session's document index.
var FieldQueries = map[string]string{
	brd.FieldBackground:    "mevcut durum problem özeti arka plan",
	brd.FieldExpected:      "beklenen sonuç hedef KPI başarı ölçütü",
	brd.FieldCustomerGroup: "müşteri segmenti hedef kitle",
	brd.FieldChannels:      "kanal app web call center store API",
	brd.FieldJourney:       "journey akış müşteri yolculuğu",
	brd.FieldJourneyDesc:   "as-is to-be akış adımları edge case",
	brd.FieldReports:       "rapor metrik dashboard",
	brd.FieldTraffic:       "trafik hacim tahmin kullanım",
	brd.FieldPrivacy:       "kişisel veri KVKK GDPR uyumluluk",
}

// Embed topic for the async document-ingest pipeline.
const DefaultIngestTopic = "EMBED_SESSION_DOCUMENT"
