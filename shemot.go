package hebphonics

import "regexp"

// shemHaShemPattern matches the seven special names of G-d. In Judaism,
// printing shem-haShem carries additional obligations and is often
// avoided, so HasShemHaShem lets a caller flag or elide such words.
//
// Grounded in grammar.py's RE_SHEMOT: Shem Elokah, Shem Adnuth, Shem
// HaVayah, Shakai, Kel, Kah and Tzvakot, matched against the word's own
// niqqud-bearing text rather than the classified symbol stream.
var shemHaShemPattern = regexp.MustCompile(
	"(" +
		"א(ֱ)?ל(ו)?ֹה" + // Shem Elokah
		")|(" +
		"א(.)?ד(ו)?ֹנ[ָ|ַ]י$" + // Shem Adnuth
		")|(" +
		"י(ּ)?(ְ|ֱ|ֲ)?ה(ֹ)?ו[ָ|ִ]ה" + // Shem HaVayah
		")|(" +
		"([^י]|^)שׁ[ַ|ָ]ד(ּ)?[ָ|ַ]י$" + // Shakai
		")|(" +
		"^אֵל(.)?$" + // Kel
		")|(" +
		"^יָהּ$" + // Kah
		")|(" +
		"^צְבָאוֹת$" + // Tzvakot
		")",
)

func isShemHaShem(word string) bool {
	return shemHaShemPattern.MatchString(word)
}
