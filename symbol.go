package hebphonics

// Symbol is a grammatical symbol in the closed set the classifier emits,
// mirroring collatinus.PartOfSpeech's pattern of a small named type with
// string-backed constants.
type Symbol string

// Letters.
const (
	SymAlef      Symbol = "alef"
	SymMapiqAlef Symbol = "mapiq-alef"
	SymBet       Symbol = "bet"
	SymVet       Symbol = "vet"
	SymGimel     Symbol = "gimel"
	SymDalet     Symbol = "dalet"
	SymHe        Symbol = "he"
	SymMapiqHe   Symbol = "mapiq-he"
	SymVav       Symbol = "vav"
	SymZayin     Symbol = "zayin"
	SymHet       Symbol = "het"
	SymTet       Symbol = "tet"
	SymYod       Symbol = "yod"
	SymKaf       Symbol = "kaf"
	SymKafSofit  Symbol = "kaf-sofit"
	SymKhaf      Symbol = "khaf"
	SymKhafSofit Symbol = "khaf-sofit"
	SymLamed     Symbol = "lamed"
	SymMem       Symbol = "mem"
	SymMemSofit  Symbol = "mem-sofit"
	SymNun       Symbol = "nun"
	SymNunSofit  Symbol = "nun-sofit"
	SymSamekh    Symbol = "samekh"
	SymAyin      Symbol = "ayin"
	SymPe        Symbol = "pe"
	SymPeSofit   Symbol = "pe-sofit"
	SymFe        Symbol = "fe"
	SymFeSofit   Symbol = "fe-sofit"
	SymTsadi     Symbol = "tsadi"
	SymTsadiSofit Symbol = "tsadi-sofit"
	SymQof       Symbol = "qof"
	SymResh      Symbol = "resh"
	SymShin      Symbol = "shin"
	SymSin       Symbol = "sin"
	SymTav       Symbol = "tav"
	SymSav       Symbol = "sav"
)

// Niqqud: dagesh.
const (
	SymDagesh      Symbol = "dagesh" // unclassified fallback
	SymDageshQal   Symbol = "dagesh-qal"
	SymDageshHazaq Symbol = "dagesh-hazaq"
)

// Niqqud: sheva.
const (
	SymSheva    Symbol = "sheva" // unclassified fallback
	SymShevaNa  Symbol = "sheva-na"
	SymShevaNah Symbol = "sheva-nah"
)

// Niqqud: hiriq, tsere, segol, patah, qamats, holam, qubuts/shuruq.
const (
	SymHiriq         Symbol = "hiriq"
	SymHiriqMaleYod  Symbol = "hiriq-male-yod"

	SymTsere         Symbol = "tsere"
	SymTsereMaleAlef Symbol = "tsere-male-alef"
	SymTsereMaleHe   Symbol = "tsere-male-he"
	SymTsereMaleYod  Symbol = "tsere-male-yod"

	SymSegol         Symbol = "segol"
	SymSegolMaleAlef Symbol = "segol-male-alef"
	SymSegolMaleHe   Symbol = "segol-male-he"
	SymSegolMaleYod  Symbol = "segol-male-yod"
	SymHatafSegol    Symbol = "hataf-segol"

	SymPatah         Symbol = "patah"
	SymPatahMaleAlef Symbol = "patah-male-alef"
	SymPatahMaleHe   Symbol = "patah-male-he"
	SymPatahGenuvah  Symbol = "patah-genuvah"
	SymHatafPatah    Symbol = "hataf-patah"

	SymQamats         Symbol = "qamats" // unclassified fallback
	SymQamatsGadol    Symbol = "qamats-gadol"
	SymQamatsMaleAlef Symbol = "qamats-male-alef"
	SymQamatsMaleHe   Symbol = "qamats-male-he"
	SymHatafQamats    Symbol = "hataf-qamats"
	SymQamatsQatan    Symbol = "qamats-qatan"

	SymHolam        Symbol = "holam" // unclassified fallback
	SymHolamHaser   Symbol = "holam-haser"
	SymHolamMaleAlef Symbol = "holam-male-alef"
	SymHolamMaleHe  Symbol = "holam-male-he"
	SymHolamMaleVav Symbol = "holam-male-vav"

	SymQubuts Symbol = "qubuts"
	SymShuruq Symbol = "shuruq"
)

// longVowels classifies the vowel symbols the sheva rules treat as "long":
// a preceding long vowel makes a following sheva vocal.
var longVowels = map[Symbol]bool{
	SymQamatsGadol:    true,
	SymQamatsMaleAlef: true,
	SymQamatsMaleHe:   true,
	SymTsere:          true,
	SymTsereMaleAlef:  true,
	SymTsereMaleHe:    true,
	SymTsereMaleYod:   true,
	SymHiriqMaleYod:   true,
	SymHolam:          true,
	SymHolamHaser:     true,
	SymHolamMaleAlef:  true,
	SymHolamMaleHe:    true,
	SymHolamMaleVav:   true,
	SymShuruq:         true,
}

// shortVowels classifies the vowel symbols the sheva rules treat as "short":
// a preceding short vowel makes a following sheva silent.
var shortVowels = map[Symbol]bool{
	SymPatah:         true,
	SymPatahMaleAlef: true,
	SymPatahMaleHe:   true,
	SymSegol:         true,
	SymSegolMaleAlef: true,
	SymSegolMaleHe:   true,
	SymSegolMaleYod:  true,
	SymHiriq:         true,
	SymQubuts:        true,
	SymQamatsQatan:   true,
}

// isVowelSymbol reports whether sym is any vowel (including male/hataf
// forms and shuruq), used by the syllabifier's boundary rule.
func isVowelSymbol(sym Symbol) bool {
	switch sym {
	case SymHiriq, SymHiriqMaleYod,
		SymTsere, SymTsereMaleAlef, SymTsereMaleHe, SymTsereMaleYod,
		SymSegol, SymSegolMaleAlef, SymSegolMaleHe, SymSegolMaleYod, SymHatafSegol,
		SymPatah, SymPatahMaleAlef, SymPatahMaleHe, SymPatahGenuvah, SymHatafPatah,
		SymQamats, SymQamatsGadol, SymQamatsMaleAlef, SymQamatsMaleHe, SymHatafQamats, SymQamatsQatan,
		SymHolam, SymHolamHaser, SymHolamMaleAlef, SymHolamMaleHe, SymHolamMaleVav,
		SymQubuts, SymShuruq:
		return true
	}
	return false
}

func isShevaNaSymbol(sym Symbol) bool {
	return sym == SymShevaNa
}

func isShevaNahSymbol(sym Symbol) bool {
	return sym == SymShevaNah
}
