package scoring

import (
	"reflect"
	"testing"

	"brd-wizard-be/pkg/brd"
)

func completeFields() map[string]string {
	return map[string]string{
		brd.FieldBackground:    "Mevcut mobil şube başvuru akışı eski teknoloji üzerinde çalışıyor ve müşteri kaybına yol açıyor.",
		brd.FieldExpected:      "Dönüşüm oranını %25'e çıkarmak, işlem süresini 3 dk altına indirmek.",
		brd.FieldCustomerGroup: "Bireysel bankacılık, 25-40 yaş mobil kullanıcılar",
		brd.FieldChannels:      "Mobil uygulama, internet şubesi ve çağrı merkezi",
		brd.FieldJourney:       "Mevcut sürecin iyileştirilmesi",
		brd.FieldJourneyDesc:   "Müşteri giriş yaptıktan sonra ürün listesine ulaşır, başvuru formunu doldurur ve onay adımında kimlik doğrulaması yapılır. Bir hata oluşursa müşteri kaldığı adımdan devam eder, timeout sonrasında oturum yenilenir.",
		brd.FieldReports:       "Aylık dönüşüm ve terk raporu",
		brd.FieldTraffic:       "Günde 40000 işlem",
		brd.FieldPrivacy:       "Hayır, kişisel veri işlenmeyecek.",
	}
}

func TestComputeEmptyDocument(t *testing.T) {
	result := Compute(brd.DefaultFields())

	if result.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", result.TotalScore)
	}
	if result.MaxTotal != brd.MaxTotal() {
		t.Errorf("MaxTotal = %d, want %d", result.MaxTotal, brd.MaxTotal())
	}
	if result.SubmitAllowed {
		t.Error("SubmitAllowed = true, want false")
	}
	if len(result.SubmitBlockers) != 2 {
		t.Errorf("SubmitBlockers = %v, want score and privacy blockers", result.SubmitBlockers)
	}
	// One entry per canonical field, privacy included as the virtual gate.
	if len(result.FieldScores) != len(brd.Fields) {
		t.Errorf("FieldScores count = %d, want %d", len(result.FieldScores), len(brd.Fields))
	}
	for _, fs := range result.FieldScores {
		if len(fs.QuestionIDs) == 0 {
			t.Errorf("field %s: empty value produced no follow-up question", fs.Field)
		}
	}
}

func TestComputeCompleteDocument(t *testing.T) {
	result := Compute(completeFields())

	if result.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", result.TotalScore)
	}
	if !result.SubmitAllowed {
		t.Errorf("SubmitAllowed = false, blockers = %v", result.SubmitBlockers)
	}
	if len(result.SubmitBlockers) != 0 {
		t.Errorf("SubmitBlockers = %v, want none", result.SubmitBlockers)
	}
}

func TestComputeTotalExcludesPrivacy(t *testing.T) {
	result := Compute(completeFields())

	sum := 0
	for _, fs := range result.FieldScores {
		if fs.Field == brd.FieldPrivacy {
			if fs.MaxScore != 0 || fs.Score != 0 {
				t.Errorf("privacy entry = %d/%d, want 0/0", fs.Score, fs.MaxScore)
			}
			continue
		}
		sum += fs.Score
	}
	if sum != result.TotalScore {
		t.Errorf("sum of field scores = %d, TotalScore = %d", sum, result.TotalScore)
	}
	if result.TotalScore > result.MaxTotal {
		t.Errorf("TotalScore %d exceeds MaxTotal %d", result.TotalScore, result.MaxTotal)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	fields := completeFields()
	fields[brd.FieldReports] = ""

	first := Compute(fields)
	second := Compute(fields)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Compute over the same fields diverged")
	}
}

func TestComputePrivacyBlocksSubmitAlone(t *testing.T) {
	fields := completeFields()
	fields[brd.FieldPrivacy] = ""

	result := Compute(fields)

	if result.SubmitAllowed {
		t.Error("SubmitAllowed = true with unanswered privacy gate")
	}
	if len(result.SubmitBlockers) != 1 {
		t.Errorf("SubmitBlockers = %v, want only the privacy blocker", result.SubmitBlockers)
	}
}

func TestWeakFields(t *testing.T) {
	fields := completeFields()
	fields[brd.FieldBackground] = "kısa"            // 5/15
	fields[brd.FieldChannels] = "mobil"             // 5/10
	fields[brd.FieldTraffic] = "çok yoğun bekleniyor" // 3/5

	result := Compute(fields)
	weak := WeakFields(result, brd.WeakRatio)

	want := []string{brd.FieldBackground, brd.FieldChannels, brd.FieldTraffic}
	if !reflect.DeepEqual(weak, want) {
		t.Errorf("WeakFields = %v, want %v", weak, want)
	}
}

func TestWeakFieldsNeverIncludesPrivacy(t *testing.T) {
	result := Compute(brd.DefaultFields())
	for _, f := range WeakFields(result, brd.WeakRatio) {
		if f == brd.FieldPrivacy {
			t.Fatal("privacy gate listed as weak field")
		}
	}
}
