package hebphonics

// Cluster is one consonant letter plus the diacritics attached to it,
// the unit the Tokenizer produces and the Classifier consumes.
type Cluster struct {
	Letter  rune // base letter code point, e.g. letterBet
	Dagesh  bool
	ShinDot bool
	SinDot  bool

	// Vowel holds the attached niqqud vowel or hataf vowel code point,
	// or 0 if the cluster carries none. Mutually exclusive with Sheva.
	Vowel rune
	Sheva bool

	// HolamHaserForVav marks that this cluster's vowel is the distinct
	// "holam haser for vav" code point rather than a plain holam.
	HolamHaserForVav bool

	IsFirst         bool
	IsLast          bool
	FollowedByMaqaf bool

	class LetterClass
}

func (c Cluster) hasVowel() bool {
	return c.Vowel != 0
}

func (c Cluster) isBare() bool {
	return !c.Dagesh && !c.hasVowel() && !c.Sheva
}

// tokenizeDiagnostics collects the recoverable ambiguities the Tokenizer
// can raise while folding the normalized stream into clusters.
type tokenizeDiagnostics struct {
	ambiguousShevaHataf bool
}

// tokenize folds a single
// word's normalized stream into clusters, one per consonant letter, and
// computes the word-relative flags.
func tokenize(tokens []classedRune) ([]Cluster, tokenizeDiagnostics) {
	var clusters []Cluster
	var diag tokenizeDiagnostics
	followedByMaqaf := false

	for _, t := range tokens {
		switch t.class {
		case classLetter:
			clusters = append(clusters, Cluster{Letter: t.r, class: letterClass(t.r)})
		case classDagesh:
			if n := len(clusters); n > 0 {
				clusters[n-1].Dagesh = true
			}
		case classShinDot:
			if n := len(clusters); n > 0 {
				clusters[n-1].ShinDot = true
			}
		case classSinDot:
			if n := len(clusters); n > 0 {
				clusters[n-1].SinDot = true
			}
		case classVowel:
			if n := len(clusters); n > 0 {
				cur := &clusters[n-1]
				if cur.Sheva {
					// A sheva already attached and a vowel arrived too:
					// only the hataf family can coexist with "sheva-shaped"
					// input; any other vowel simply overwrites, per the
					// tokenizer's "hataf wins" rule.
					diag.ambiguousShevaHataf = true
					cur.Sheva = false
				}
				cur.Vowel = t.r
				cur.HolamHaserForVav = t.r == pointHolamHaserVav
			}
		case classHataf:
			if n := len(clusters); n > 0 {
				cur := &clusters[n-1]
				if cur.Sheva {
					diag.ambiguousShevaHataf = true
					cur.Sheva = false
				}
				cur.Vowel = t.r
			}
		case classSheva:
			if n := len(clusters); n > 0 {
				cur := &clusters[n-1]
				if cur.hasVowel() {
					diag.ambiguousShevaHataf = true
					continue // hataf already present and wins
				}
				cur.Sheva = true
			}
		case classMaqaf:
			if n := len(clusters); n > 0 {
				followedByMaqaf = true
			}
		}
	}

	for i := range clusters {
		clusters[i].IsFirst = i == 0
		clusters[i].IsLast = i == len(clusters)-1
		if clusters[i].IsLast {
			clusters[i].FollowedByMaqaf = followedByMaqaf
		}
	}
	return clusters, diag
}
