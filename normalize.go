package hebphonics

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// classedRune pairs a code point with the class the Normalizer assigned it.
type classedRune struct {
	class CodepointClass
	r     rune
}

// normalizeResult is the Normalizer's output: a canonical stream of
// classed code points plus whether any code point outside the recognized
// inventory was encountered.
type normalizeResult struct {
	tokens            []classedRune
	unknownCodepoints bool
}

// normalize strips cantillation and bidi controls, decomposes precomposed
// presentation forms via NFD (which splits shin/sin ligatures into base
// shin plus the dot, exactly as the Normalizer's contract requires), and
// classifies every remaining code point. Diacritic reordering within a
// cluster is not done here: Cluster's fields are assigned by position
// (letter, dagesh, dot, vowel/sheva) regardless of input order, which
// realizes the canonical order the contract describes without an explicit
// reordering pass.
func normalize(s string) normalizeResult {
	s = norm.NFD.String(s)
	var res normalizeResult
	for _, r := range s {
		switch {
		case cantillationSet[r] || bidiControls[r]:
			continue
		case r == letterMaqaf:
			res.tokens = append(res.tokens, classedRune{classMaqaf, r})
		case isLetter(r):
			res.tokens = append(res.tokens, classedRune{classLetter, r})
		case r == pointHolamHaserVav:
			res.tokens = append(res.tokens, classedRune{classVowel, r})
		case vowelPoints[r]:
			res.tokens = append(res.tokens, classedRune{classVowel, r})
		case hatafPoints[r]:
			res.tokens = append(res.tokens, classedRune{classHataf, r})
		case r == pointSheva:
			res.tokens = append(res.tokens, classedRune{classSheva, r})
		case r == pointDageshOrMapiq:
			res.tokens = append(res.tokens, classedRune{classDagesh, r})
		case r == pointShinDot:
			res.tokens = append(res.tokens, classedRune{classShinDot, r})
		case r == pointSinDot:
			res.tokens = append(res.tokens, classedRune{classSinDot, r})
		case isWhitespaceOrPunct(r):
			res.tokens = append(res.tokens, classedRune{classWhitespace, r})
		default:
			res.unknownCodepoints = true
			res.tokens = append(res.tokens, classedRune{classOther, r})
		}
	}
	return res
}

// SplitWords breaks text on whitespace/punctuation, the way ParseWords
// needs it split: a maqaf ends the word it follows (so that word's
// Parse call can see it and set FollowedByMaqaf) rather than being
// discarded as plain word-breaking punctuation.
func SplitWords(text string) []string {
	var words []string
	var cur strings.Builder
	for i, r := range text {
		switch {
		case r == letterMaqaf:
			cur.WriteRune(r)
			words = append(words, cur.String())
			cur.Reset()
		case isWhitespaceOrPunct(r):
			if cur.Len() > 0 {
				words = append(words, cur.String())
				cur.Reset()
			}
		case r == utf8.RuneError:
			// Copy the original bytes so that Parse still sees malformed
			// UTF-8 rather than a substituted U+FFFD.
			_, size := utf8.DecodeRuneInString(text[i:])
			cur.WriteString(text[i : i+size])
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}
