package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := SplitText("kısa metin", 100, 20)
		if len(chunks) != 1 || chunks[0] != "kısa metin" {
			t.Errorf("chunks = %v, want the input untouched", chunks)
		}
	})

	t.Run("chunks overlap", func(t *testing.T) {
		text := strings.Repeat("abcde ", 100) // 600 chars
		chunks := SplitText(text, 200, 50)

		if len(chunks) < 3 {
			t.Fatalf("chunk count = %d, want at least 3", len(chunks))
		}
		for i, c := range chunks {
			if len([]rune(c)) > 200 {
				t.Errorf("chunk %d length = %d, want <= 200", i, len([]rune(c)))
			}
		}
		// Consecutive chunks share the overlap region.
		first := []rune(chunks[0])
		second := []rune(chunks[1])
		tail := string(first[len(first)-50:])
		head := string(second[:50])
		if tail != head {
			t.Errorf("overlap mismatch: %q vs %q", tail, head)
		}
	})

	t.Run("overlap larger than chunk size falls back", func(t *testing.T) {
		text := strings.Repeat("x", 50)
		chunks := SplitText(text, 10, 20)
		if len(chunks) != 5 {
			t.Errorf("chunk count = %d, want 5 non-overlapping chunks", len(chunks))
		}
	})
}
