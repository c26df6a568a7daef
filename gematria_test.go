package hebphonics

import "testing"

func TestGematria(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"שָׁלוֹם", 376},  // shin(300) + lamed(30) + vav(6) + mem(40)
		{"אֱלֹהִים", 86}, // alef(1)+lamed(30)+he(5)+yod(10)+mem(40)
	}
	for _, tt := range tests {
		result, err := Parse(tt.word)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.word, err)
		}
		if result.Gematria != tt.want {
			t.Errorf("gematria(%q) = %d, want %d", tt.word, result.Gematria, tt.want)
		}
	}
}

func TestGematriaTreatsSofitAsBaseValue(t *testing.T) {
	result, err := Parse("ךָ") // final-kaf, worth the same 20 as kaf
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if result.Gematria != 20 {
		t.Errorf("gematria = %d, want 20", result.Gematria)
	}
}
