package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const baseURL = "http://localhost:3000/api/wizard/v1"

// Simplified DTOs for the script
type apiResponse struct {
	Data json.RawMessage `json:"data"`
}

type wizardPayload struct {
	SessionId      string   `json:"session_id"`
	State          string   `json:"state"`
	Prompt         string   `json:"prompt"`
	NextField      string   `json:"next_field"`
	NextQuestions  []string `json:"next_questions"`
	TotalScore     int      `json:"total_score"`
	MaxTotal       int      `json:"max_total"`
	SubmitAllowed  bool     `json:"submit_allowed"`
	SubmitBlockers []string `json:"submit_blockers"`
	WeakFields     []string `json:"weak_fields"`
}

var (
	botColor   = color.New(color.FgCyan)
	userColor  = color.New(color.FgGreen)
	scoreColor = color.New(color.FgYellow)
	token      string
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	var err error
	token, err = mintToken(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println("=== BRD Wizard Simulation Client ===")

	payload, err := createSession("Mobil Sube Yenileme")
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	sessionID := payload.SessionId
	fmt.Printf("Session Created: %s\n", sessionID)
	printPayload(payload)

	// Scripted conversation: decline the slide deck, then fill the fields.
	turns := []string{
		"Hayır",
		"Mevcut mobil şube akışı eski ve müşteri kaybına yol açıyor, dönüşüm oranı %12 seviyesinde.",
		"Dönüşüm oranını %25'e çıkarmak, işlem süresini 3 dk altına indirmek istiyoruz.",
		"Bireysel bankacılık müşterileri, özellikle 25-40 yaş mobil kullanıcılar.",
		"Mobil uygulama, internet şubesi ve çağrı merkezi kanalları.",
		"Mevcut sürecin iyileştirilmesi.",
		"Müşteri girişten sonra ürün listesine ulaşır, başvuru formunu doldurur, onay adımında kimlik doğrulama yapılır. Hata durumunda işlem yarıda kalırsa kaldığı adımdan devam eder, timeout sonrası oturum yenilenir.",
		"Aylık dönüşüm ve terk raporu.",
		"Günde yaklaşık 40000 işlem bekliyoruz.",
		"Hayır, kişisel veri işlenmeyecek.",
	}

	for _, text := range turns {
		userColor.Printf("\nUSER: %s\n", text)

		start := time.Now()
		payload, err = sendTurn(sessionID, text)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		printPayload(payload)
		fmt.Printf("(%.2fs)\n", elapsed.Seconds())

		if payload.SubmitAllowed {
			scoreColor.Println("\n>>> Submission unlocked.")
			break
		}
	}
}

func mintToken(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func createSession(title string) (*wizardPayload, error) {
	body, _ := json.Marshal(map[string]string{"title": title})
	return call("POST", baseURL+"/session", body)
}

func sendTurn(sessionID, message string) (*wizardPayload, error) {
	body, _ := json.Marshal(map[string]string{"message": message})
	return call("POST", fmt.Sprintf("%s/session/%s/turn", baseURL, sessionID), body)
}

func call(method, url string, body []byte) (*wizardPayload, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}

	var wrapper apiResponse
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	var payload wizardPayload
	if err := json.Unmarshal(wrapper.Data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func printPayload(p *wizardPayload) {
	botColor.Printf("BOT [%s]: %s\n", p.State, p.Prompt)
	scoreColor.Printf("Score: %d/%d | next: %s | weak: %v | blockers: %v\n",
		p.TotalScore, p.MaxTotal, p.NextField, p.WeakFields, p.SubmitBlockers)
}
