package hebphonics

import "testing"

func TestSyllabifyNeverBreaksBeforeShevaNah(t *testing.T) {
	// letter, sheva-nah, letter, patah — sheva-nah must not start a syllable.
	symbols := []Symbol{SymBet, SymShevaNah, SymLamed, SymPatah}
	owner := []int{0, 0, 2, 2}
	syllables := syllabify(symbols, owner)
	for _, s := range syllables {
		if s.Start == 1 {
			t.Errorf("syllable boundary incorrectly inserted before sheva-nah: %+v", syllables)
		}
	}
}

func TestSyllabifyBreaksBeforeShevaNa(t *testing.T) {
	symbols := []Symbol{SymBet, SymShevaNa, SymResh, SymTsereMaleAlef}
	owner := []int{0, 0, 2, 2}
	syllables := syllabify(symbols, owner)
	if len(syllables) != 2 {
		t.Fatalf("expected 2 syllables, got %d: %+v", len(syllables), syllables)
	}
	if syllables[1].Start != 2 {
		t.Errorf("second syllable should start at the resh cluster, got %d", syllables[1].Start)
	}
}

func TestSyllabifyEmptyInput(t *testing.T) {
	if got := syllabify(nil, nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
