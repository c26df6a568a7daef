package hebphonics

import "sort"

// Syllable is a [Start, End) span over a ParseResult's Symbols, plus
// whether it is open (ends in a vowel) or closed.
type Syllable struct {
	Start, End int
	Open       bool
}

// syllabify partitions a classified symbol sequence into syllables. owner maps each
// symbol back to the index where its originating cluster's span began, so
// that a syllable boundary triggered by a vowel or sheva-na lands at the
// start of that vowel's consonant cluster rather than splitting the
// cluster's own letter/dagesh/vowel run apart.
func syllabify(symbols []Symbol, owner []int) []Syllable {
	if len(symbols) == 0 {
		return nil
	}

	starts := map[int]bool{0: true}
	for i, sym := range symbols {
		if isVowelSymbol(sym) || isShevaNaSymbol(sym) {
			starts[owner[i]] = true
		}
	}

	ordered := make([]int, 0, len(starts))
	for s := range starts {
		ordered = append(ordered, s)
	}
	sort.Ints(ordered)

	syllables := make([]Syllable, 0, len(ordered))
	for idx, start := range ordered {
		end := len(symbols)
		if idx+1 < len(ordered) {
			end = ordered[idx+1]
		}
		open := isVowelSymbol(symbols[end-1])
		syllables = append(syllables, Syllable{Start: start, End: end, Open: open})
	}
	return syllables
}
