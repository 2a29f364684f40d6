package scoring

import (
	"testing"
)

func TestScoreBackground(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantScore int
		wantQID   string
	}{
		{
			name:      "empty",
			value:     "   ",
			wantScore: 0,
			wantQID:   QBackgroundEmpty,
		},
		{
			name:      "too short",
			value:     "kısa metin",
			wantScore: 5,
			wantQID:   QBackgroundMoreDetail,
		},
		{
			name:      "vague phrasing",
			value:     "Mevcut süreçlerin daha iyi hale getirilmesi ve operasyonun uygun şekilde yönetilmesi gerekiyor.",
			wantScore: 13,
			wantQID:   QBackgroundMoreSpecific,
		},
		{
			name:      "concrete",
			value:     "Mevcut mobil şube başvuru akışı eski teknoloji üzerinde çalışıyor ve müşteri kaybına yol açıyor.",
			wantScore: 15,
			wantQID:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, qids := scoreBackground(tt.value)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if tt.wantQID == "" && len(qids) != 0 {
				t.Errorf("qids = %v, want none", qids)
			}
			if tt.wantQID != "" && (len(qids) != 1 || qids[0] != tt.wantQID) {
				t.Errorf("qids = %v, want [%s]", qids, tt.wantQID)
			}
		})
	}
}

func TestScoreExpectedResults(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantScore int
	}{
		{name: "empty", value: "", wantScore: 0},
		{name: "measurable percent", value: "Dönüşüm oranını %25'e çıkarmak", wantScore: 15},
		{name: "measurable duration", value: "İşlem süresi 3 dk altına inmeli", wantScore: 15},
		{name: "no target", value: "Müşteri memnuniyetini artırmak", wantScore: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := scoreExpectedResults(tt.value)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func TestScoreCustomerGroup(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantScore int
	}{
		{name: "empty", value: "", wantScore: 0},
		{name: "too generic", value: "Tüm müşteriler", wantScore: 2},
		{name: "specific", value: "Bireysel bankacılık, 25-40 yaş mobil kullanıcılar", wantScore: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := scoreCustomerGroup(tt.value)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func TestScoreImpactedChannels(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantScore int
	}{
		{name: "empty", value: "", wantScore: 0},
		{name: "single word", value: "mobil", wantScore: 5},
		{name: "two words", value: "mobil şube", wantScore: 5},
		{name: "detailed", value: "Mobil uygulama, internet şubesi ve çağrı merkezi", wantScore: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := scoreImpactedChannels(tt.value)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func TestScoreJourneysDescription(t *testing.T) {
	long := "Müşteri giriş yaptıktan sonra ürün listesine ulaşır, başvuru formunu doldurur ve onay adımında kimlik doğrulaması yapılır. Akış tamamlanınca sözleşme e-posta ile gönderilir."
	longWithEdge := long + " Bir hata oluşursa müşteri kaldığı adımdan devam eder, timeout sonrasında oturum yenilenir."

	tests := []struct {
		name      string
		value     string
		wantScore int
	}{
		{name: "empty", value: "", wantScore: 0},
		{name: "short", value: "Müşteri girer ve başvurur.", wantScore: 20},
		{name: "long without edge cases", value: long, wantScore: 35},
		{name: "long with edge cases", value: longWithEdge, wantScore: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := scoreJourneysDescription(tt.value)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func TestScoreTrafficForecast(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantScore int
	}{
		{name: "empty", value: "", wantScore: 0},
		{name: "numeric", value: "Günde 40000 işlem", wantScore: 5},
		{name: "non numeric", value: "Yoğun trafik bekliyoruz", wantScore: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := scoreTrafficForecast(tt.value)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}
