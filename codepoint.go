package hebphonics

// CodepointClass tags a Unicode code point by its role in the parser,
// mirroring collatinus.PartOfSpeech's pattern of a small named-int enum.
type CodepointClass int

const (
	classOther CodepointClass = iota
	classLetter
	classVowel
	classHataf
	classSheva
	classDagesh
	classShinDot
	classSinDot
	classMaqaf
	classWhitespace
	classCantillation
)

// Hebrew letters, U+05D0..U+05EA <https://www.unicode.org/charts/PDF/U0590.pdf>.
const (
	letterAlef       rune = 0x05D0
	letterBet        rune = 0x05D1
	letterGimel      rune = 0x05D2
	letterDalet      rune = 0x05D3
	letterHe         rune = 0x05D4
	letterVav        rune = 0x05D5
	letterZayin      rune = 0x05D6
	letterHet        rune = 0x05D7
	letterTet        rune = 0x05D8
	letterYod        rune = 0x05D9
	letterFinalKaf   rune = 0x05DA
	letterKaf        rune = 0x05DB
	letterLamed      rune = 0x05DC
	letterFinalMem   rune = 0x05DD
	letterMem        rune = 0x05DE
	letterFinalNun   rune = 0x05DF
	letterNun        rune = 0x05E0
	letterSamekh     rune = 0x05E1
	letterAyin       rune = 0x05E2
	letterFinalPe    rune = 0x05E3
	letterPe         rune = 0x05E4
	letterFinalTsadi rune = 0x05E5
	letterTsadi      rune = 0x05E6
	letterQof        rune = 0x05E7
	letterResh       rune = 0x05E8
	letterShin       rune = 0x05E9
	letterTav        rune = 0x05EA
	letterMaqaf      rune = 0x05BE
)

// Niqqud points, U+05B0..U+05C7.
const (
	pointSheva           rune = 0x05B0
	pointHatafSegol      rune = 0x05B1
	pointHatafPatah      rune = 0x05B2
	pointHatafQamats     rune = 0x05B3
	pointHiriq           rune = 0x05B4
	pointTsere           rune = 0x05B5
	pointSegol           rune = 0x05B6
	pointPatah           rune = 0x05B7
	pointQamats          rune = 0x05B8
	pointHolam           rune = 0x05B9
	pointHolamHaserVav   rune = 0x05BA // "HOLAM HASER FOR VAV": pairs with a preceding vav
	pointQubuts          rune = 0x05BB
	pointDageshOrMapiq   rune = 0x05BC
	pointMeteg           rune = 0x05BD
	pointRafe            rune = 0x05BF
	pointShinDot         rune = 0x05C1
	pointSinDot          rune = 0x05C2
	pointQamatsQatanDot  rune = 0x05C7
)

// vowelPoints are the plain niqqud vowels (excludes sheva and the hataf family).
var vowelPoints = map[rune]bool{
	pointHiriq:          true,
	pointTsere:          true,
	pointSegol:          true,
	pointPatah:          true,
	pointQamats:         true,
	pointHolam:          true,
	pointHolamHaserVav:  true,
	pointQubuts:         true,
	pointQamatsQatanDot: true,
}

var hatafPoints = map[rune]bool{
	pointHatafSegol:  true,
	pointHatafPatah:  true,
	pointHatafQamats: true,
}

// cantillationSet holds the marks stripped by the normalizer: the full
// Hebrew accents block plus meteg, rafe, paseq, sof-pasuq and nun-hafukha,
// per the Normalizer's contract.
var cantillationSet = buildCantillationSet()

func buildCantillationSet() map[rune]bool {
	m := make(map[rune]bool)
	for r := rune(0x0591); r <= 0x05AF; r++ {
		m[r] = true
	}
	for _, r := range []rune{0x05BD, 0x05BF, 0x05C0, 0x05C3, 0x05C6} {
		m[r] = true
	}
	return m
}

// bidiControls are the zero-width directional marks the normalizer drops.
var bidiControls = map[rune]bool{
	0x200C: true,
	0x200D: true,
	0x200E: true,
	0x200F: true,
}

func isLetter(r rune) bool {
	return (r >= letterAlef && r <= letterTav) || r == letterMaqaf
}

func isWhitespaceOrPunct(r rune) bool {
	if r == letterMaqaf {
		return false
	}
	switch r {
	case ' ', '\t', '\n', '\r', '/', '.', ',', ';', ':', '!', '?', '-', '(', ')', '[', ']':
		return true
	}
	return false
}

// LetterClass groups consonants by the phonological behavior the
// classifier's rules key on.
type LetterClass int

const (
	ClassOtherLetter LetterClass = iota
	ClassBGDKFT                  // bet, gimel, dalet, kaf, pe, tav: take dagesh-qal
	ClassGuttural                // alef, he, het, ayin
	ClassSemiGuttural            // resh: behaves like a guttural for dagesh-hazaq purposes
)

func letterClass(letter rune) LetterClass {
	switch letter {
	case letterBet, letterGimel, letterDalet, letterKaf, letterFinalKaf, letterPe, letterFinalPe, letterTav:
		return ClassBGDKFT
	case letterAlef, letterHe, letterHet, letterAyin:
		return ClassGuttural
	case letterResh:
		return ClassSemiGuttural
	default:
		return ClassOtherLetter
	}
}

// finalLetters maps every sofit letter to its non-final counterpart, used
// by the sheva "similar letter" rule and by gematria.
var finalLetters = map[rune]rune{
	letterFinalKaf:   letterKaf,
	letterFinalMem:   letterMem,
	letterFinalNun:   letterNun,
	letterFinalPe:    letterPe,
	letterFinalTsadi: letterTsadi,
}

func baseLetter(letter rune) rune {
	if b, ok := finalLetters[letter]; ok {
		return b
	}
	return letter
}
