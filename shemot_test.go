package hebphonics

import "testing"

func TestHasShemHaShem(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"אֵל", true},
		{"אֵלַי", false},
		{"יָהּ", true},
	}
	for _, tt := range tests {
		result, err := Parse(tt.word)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.word, err)
		}
		if result.HasShemHaShem != tt.want {
			t.Errorf("HasShemHaShem(%q) = %v, want %v", tt.word, result.HasShemHaShem, tt.want)
		}
	}
}
