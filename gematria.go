package hebphonics

// gematriaValues holds the numerical value of each Hebrew letter, keyed on
// its non-final form; a sofit letter is worth the same as its base letter.
var gematriaValues = map[rune]int{
	letterAlef:   1,
	letterBet:    2,
	letterGimel:  3,
	letterDalet:  4,
	letterHe:     5,
	letterVav:    6,
	letterZayin:  7,
	letterHet:    8,
	letterTet:    9,
	letterYod:    10,
	letterKaf:    20,
	letterLamed:  30,
	letterMem:    40,
	letterNun:    50,
	letterSamekh: 60,
	letterAyin:   70,
	letterPe:     80,
	letterTsadi:  90,
	letterQof:    100,
	letterResh:   200,
	letterShin:   300,
	letterTav:    400,
}

// gematria sums the numerical value of a word's letters (the supplemental
// "Gematria" feature, grounded in grammar.py's GEMATRIA_VALUES/gematria).
func gematria(clusters []Cluster) int {
	total := 0
	for _, c := range clusters {
		total += gematriaValues[baseLetter(c.Letter)]
	}
	return total
}
