package hebphonics

import "testing"

func TestLetterClass(t *testing.T) {
	tests := []struct {
		letter rune
		want   LetterClass
	}{
		{letterBet, ClassBGDKFT},
		{letterFinalKaf, ClassBGDKFT},
		{letterAlef, ClassGuttural},
		{letterResh, ClassSemiGuttural},
		{letterMem, ClassOtherLetter},
	}
	for _, tt := range tests {
		if got := letterClass(tt.letter); got != tt.want {
			t.Errorf("letterClass(%q) = %v, want %v", string(tt.letter), got, tt.want)
		}
	}
}

func TestBaseLetterResolvesSofit(t *testing.T) {
	tests := []struct {
		letter rune
		want   rune
	}{
		{letterFinalKaf, letterKaf},
		{letterFinalMem, letterMem},
		{letterFinalNun, letterNun},
		{letterFinalPe, letterPe},
		{letterFinalTsadi, letterTsadi},
		{letterBet, letterBet},
	}
	for _, tt := range tests {
		if got := baseLetter(tt.letter); got != tt.want {
			t.Errorf("baseLetter(%q) = %q, want %q", string(tt.letter), string(got), string(tt.want))
		}
	}
}
