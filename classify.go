package hebphonics

// foldState carries the "most recently emitted symbol(s)" across the
// left-to-right classification fold: no rule looks further back than
// this, and nothing here is ever rewritten once a cluster has moved past.
type foldState struct {
	lastVowel      Symbol // most recent vowel-ish symbol emitted, "" if none yet
	lastVowelSound bool   // true if the previous cluster's final symbol was a vowel or sheva-na
}

// classify runs the classification fold: an ordered rule
// table, evaluated cluster by cluster, left to right, in the fixed group
// order letters -> dagesh -> vav-composition -> sheva -> hataf ->
// male-mater -> patah-genuvah -> qamats-qatan -> residual vowels.
func classify(clusters []Cluster, wordFollowedByMaqaf bool) ([]Symbol, []int, Diagnostics) {
	n := len(clusters)
	consumed := make([]bool, n)
	forcedSheva := make([]Symbol, n)

	var out []Symbol
	var owner []int // owner[k] = index in out where symbols[k]'s cluster span began
	var diag Diagnostics
	fold := foldState{}

	hasNiqqud := false
	for _, c := range clusters {
		if c.Dagesh || c.hasVowel() || c.Sheva {
			hasNiqqud = true
			break
		}
	}

	for i := 0; i < n; i++ {
		if consumed[i] {
			continue
		}
		cur := clusters[i]
		var prev *Cluster
		if i > 0 {
			p := clusters[i-1]
			prev = &p
		}
		var next *Cluster
		if i+1 < n {
			nx := clusters[i+1]
			next = &nx
		}
		var afterNext *Cluster
		if i+2 < n {
			an := clusters[i+2]
			afterNext = &an
		}

		var clusterOut []Symbol

		// --- vav composition (letters + dagesh deferred to this group for vav) ---
		if cur.Letter == letterVav {
			handled, vavOut, consumesSelf, prevPatch := classifyVav(prev, cur)
			if handled {
				if len(prevPatch) > 0 {
					prevOwner := len(out)
					if len(owner) > 0 {
						prevOwner = owner[len(owner)-1]
					}
					out = append(out, prevPatch...)
					for range prevPatch {
						owner = append(owner, prevOwner)
					}
				}
				if consumesSelf {
					fold.lastVowel = pickLastVowel(fold.lastVowel, prevPatch)
					fold.lastVowelSound = len(prevPatch) > 0
					continue
				}
				clusterOut = append(clusterOut, vavOut...)
				spanStart := len(out)
				out = append(out, clusterOut...)
				for range clusterOut {
					owner = append(owner, spanStart)
				}
				fold.lastVowel, fold.lastVowelSound = updateFold(fold, clusterOut)
				continue
			}
		}

		// --- letters + dagesh ---
		letterSym, dageshSym, diagLD := classifyLetterAndDagesh(prev, fold, cur)
		diag = diag.merge(diagLD)
		clusterOut = append(clusterOut, letterSym)
		if dageshSym != "" {
			clusterOut = append(clusterOut, dageshSym)
		}

		// --- sheva ---
		if cur.Sheva {
			var shevaSym Symbol
			if forcedSheva[i] != "" {
				shevaSym = forcedSheva[i]
			} else {
				var nextForced Symbol
				shevaSym, nextForced = classifySheva(prev, cur, next, fold, dageshSym)
				if next != nil && nextForced != "" {
					forcedSheva[i+1] = nextForced
				}
			}
			clusterOut = append(clusterOut, shevaSym)
		} else if cur.Vowel != 0 {
			// --- hataf ---
			if hatafPoints[cur.Vowel] {
				clusterOut = append(clusterOut, classifyHataf(cur.Vowel))
			} else {
				sym, consumesNext, diagV := classifyVowel(cur, prev, next, afterNext, wordFollowedByMaqaf, diag)
				diag = diagV
				clusterOut = append(clusterOut, sym)
				if consumesNext {
					consumed[i+1] = true
				}
			}
		}

		spanStart := len(out)
		out = append(out, clusterOut...)
		for range clusterOut {
			owner = append(owner, spanStart)
		}
		fold.lastVowel, fold.lastVowelSound = updateFold(fold, clusterOut)
	}

	if !hasNiqqud {
		diag.HasNoNiqqud = true
	}
	return out, owner, diag
}

// updateFold recomputes the fold state after a cluster's symbols are
// finalized: lastVowel only moves forward when a real vowel was emitted,
// and lastVowelSound reflects whether the cluster's final symbol voices.
func updateFold(fold foldState, clusterOut []Symbol) (Symbol, bool) {
	lastVowel := fold.lastVowel
	lastVowelSound := false
	for _, sym := range clusterOut {
		if isVowelSymbol(sym) {
			lastVowel = sym
		}
	}
	if len(clusterOut) > 0 {
		last := clusterOut[len(clusterOut)-1]
		lastVowelSound = isVowelSymbol(last) || isShevaNaSymbol(last)
	}
	return lastVowel, lastVowelSound
}

func pickLastVowel(cur Symbol, emitted []Symbol) Symbol {
	for _, sym := range emitted {
		if isVowelSymbol(sym) {
			return sym
		}
	}
	return cur
}

// classifyLetterAndDagesh resolves a cluster's base letter symbol and its
// dagesh symbol together, since mapiq overrides the letter's identity
// mapping rather than adding a second symbol.
func classifyLetterAndDagesh(prev *Cluster, fold foldState, cur Cluster) (Symbol, Symbol, Diagnostics) {
	var diag Diagnostics

	switch cur.Letter {
	case letterAlef:
		if cur.Dagesh {
			return SymMapiqAlef, "", diag
		}
		return SymAlef, "", diag
	case letterHe:
		if cur.Dagesh {
			if cur.IsLast {
				return SymMapiqHe, "", diag
			}
			return SymHe, SymDageshHazaq, diag
		}
		return SymHe, "", diag
	case letterShin:
		letterSym, d := shinOrSin(cur)
		diag = diag.merge(d)
		if !cur.Dagesh {
			return letterSym, "", diag
		}
		return letterSym, SymDageshHazaq, diag
	}

	letterSym := baseLetterSymbol(cur.Letter, cur.Dagesh)
	if !cur.Dagesh {
		return letterSym, "", diag
	}

	if letterClass(cur.Letter) == ClassBGDKFT {
		if prev != nil && fold.lastVowelSound {
			return letterSym, SymDageshHazaq, diag
		}
		return letterSym, SymDageshQal, diag
	}
	return letterSym, SymDageshHazaq, diag
}

func baseLetterSymbol(letter rune, dagesh bool) Symbol {
	switch letter {
	case letterAlef:
		return SymAlef
	case letterBet:
		if dagesh {
			return SymBet
		}
		return SymVet
	case letterGimel:
		return SymGimel
	case letterDalet:
		return SymDalet
	case letterHe:
		return SymHe
	case letterVav:
		return SymVav
	case letterZayin:
		return SymZayin
	case letterHet:
		return SymHet
	case letterTet:
		return SymTet
	case letterYod:
		return SymYod
	case letterKaf:
		if dagesh {
			return SymKaf
		}
		return SymKhaf
	case letterFinalKaf:
		if dagesh {
			return SymKafSofit
		}
		return SymKhafSofit
	case letterLamed:
		return SymLamed
	case letterMem:
		return SymMem
	case letterFinalMem:
		return SymMemSofit
	case letterNun:
		return SymNun
	case letterFinalNun:
		return SymNunSofit
	case letterSamekh:
		return SymSamekh
	case letterAyin:
		return SymAyin
	case letterPe:
		if dagesh {
			return SymPe
		}
		return SymFe
	case letterFinalPe:
		if dagesh {
			return SymPeSofit
		}
		return SymFeSofit
	case letterTsadi:
		return SymTsadi
	case letterFinalTsadi:
		return SymTsadiSofit
	case letterQof:
		return SymQof
	case letterResh:
		return SymResh
	case letterShin:
		return SymShin // shin/sin resolved by the caller, which owns the dot flags
	case letterTav:
		if dagesh {
			return SymTav
		}
		return SymSav
	}
	return ""
}

// classifyVav resolves vav composition in full, since vav's own dagesh and
// letter symbol are entirely governed by its composition with the
// preceding cluster rather than the generic letter/dagesh mapping.
// Returns whether composition applied, the vav cluster's own
// emitted symbols (if it is not consumed), whether the cluster consumes
// itself, and any symbols to append onto the previous cluster's slot.
func classifyVav(prev *Cluster, cur Cluster) (handled bool, vavOut []Symbol, consumesSelf bool, prevPatch []Symbol) {
	// Consumption rules need an actual previous cluster to attach to; with
	// no previous cluster, the vav+symbol forms (rules 1/3/5) apply instead.
	prevEligibleForConsumption := prev != nil && !prev.hasVowel() && !prev.Sheva

	if cur.HolamHaserForVav {
		// The distinct "holam haser for vav" marker always reads as its
		// own letter + vowel; it never composes into holam-male-vav.
		return true, []Symbol{SymVav, SymHolamHaser}, false, nil
	}

	if cur.Vowel == pointHolam && !cur.Dagesh {
		if prevEligibleForConsumption {
			return true, nil, true, []Symbol{SymHolamMaleVav}
		}
		return true, []Symbol{SymVav, SymHolamHaser}, false, nil
	}

	if cur.Dagesh {
		if !cur.hasVowel() && prevEligibleForConsumption {
			return true, nil, true, []Symbol{SymShuruq}
		}
		// "after a vowel, or carries its own vowel"
		return true, []Symbol{SymVav, SymDageshHazaq}, false, nil
	}

	return false, nil, false, nil
}

func shinOrSin(cur Cluster) (Symbol, Diagnostics) {
	var diag Diagnostics
	switch {
	case cur.ShinDot:
		return SymShin, diag
	case cur.SinDot:
		return SymSin, diag
	default:
		diag.MissingShinSinDot = true
		return SymShin, diag
	}
}

func classifyHataf(vowel rune) Symbol {
	switch vowel {
	case pointHatafSegol:
		return SymHatafSegol
	case pointHatafPatah:
		return SymHatafPatah
	case pointHatafQamats:
		return SymHatafQamats
	}
	return ""
}

// classifySheva resolves a sheva's na/nah (vocal/silent) status. forcedNext, when non-empty, must be
// applied to the immediately following cluster's own sheva (rules 1/2).
func classifySheva(prev *Cluster, cur Cluster, next *Cluster, fold foldState, dageshSym Symbol) (sym Symbol, forcedNext Symbol) {
	if next != nil && next.Sheva {
		if next.IsLast {
			return SymShevaNa, SymShevaNa
		}
		return SymShevaNah, SymShevaNa
	}
	if cur.IsLast {
		return SymShevaNah, ""
	}
	if cur.IsFirst {
		return SymShevaNa, ""
	}
	if dageshSym == SymDageshHazaq {
		return SymShevaNa, ""
	}
	if fold.lastVowel != "" {
		if longVowels[fold.lastVowel] {
			return SymShevaNa, ""
		}
		if shortVowels[fold.lastVowel] {
			return SymShevaNah, ""
		}
	}
	if next != nil && next.IsLast && next.Letter == letterAlef && !next.hasVowel() && !next.Sheva {
		return SymShevaNah, ""
	}
	if next != nil && isSimilarLetter(cur.Letter, next.Letter) {
		return SymShevaNa, ""
	}
	return SymShevaNah, ""
}

// similarLetterGroups clusters consonants by manner/place of articulation
// for the sheva-na "before a similar letter" rule.
var similarLetterGroups = [][]rune{
	{letterAlef, letterHe, letterAyin},
	{letterBet, letterVav},
	{letterGimel, letterKaf, letterQof},
	{letterDalet, letterTav},
	{letterZayin, letterSamekh, letterTsadi, letterShin},
	{letterLamed, letterNun, letterResh},
	{letterMem},
}

func isSimilarLetter(a, b rune) bool {
	a, b = baseLetter(a), baseLetter(b)
	if a == b {
		return true
	}
	for _, group := range similarLetterGroups {
		inA, inB := false, false
		for _, r := range group {
			if r == a {
				inA = true
			}
			if r == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// classifyVowel resolves male-mater, patah-genuvah, qamats-qatan, and the residual-vowels
// fallback for a cluster whose diacritic is a plain niqqud vowel (not a
// sheva or hataf, both handled by their own groups).
func classifyVowel(cur Cluster, prev, next, afterNext *Cluster, wordFollowedByMaqaf bool, diag Diagnostics) (Symbol, bool, Diagnostics) {
	if sym, consumes := maleMater(cur, next, afterNext); sym != "" {
		return sym, consumes, diag
	}

	if sym, ok := patahGenuvah(cur); ok {
		return sym, false, diag
	}

	if cur.Vowel == pointQamats {
		sym, d := qamatsQatan(cur, prev, next, wordFollowedByMaqaf, diag)
		return sym, false, d
	}

	switch cur.Vowel {
	case pointHiriq:
		return SymHiriq, false, diag
	case pointTsere:
		return SymTsere, false, diag
	case pointSegol:
		return SymSegol, false, diag
	case pointPatah:
		return SymPatah, false, diag
	case pointHolam, pointHolamHaserVav:
		return SymHolamHaser, false, diag
	case pointQubuts:
		return SymQubuts, false, diag
	case pointQamatsQatanDot:
		return SymQamatsQatan, false, diag
	}
	return SymHolam, false, diag // unreachable fallback
}

// maleMater resolves mater lectionis: a mater-lectionis letter immediately
// following an unconsumed vowel is absorbed into a -male symbol.
//
// afterNext guards against claiming a letter that vav-composition
// is itself about to consume into that same letter's vowel slot: e.g. in
// תֹהוּ the bare he between tav's holam and the dagesh-bearing vav is not
// a holam mater, it is the vowel-less host that vav's shuruq/holam-male-vav
// consumption is about to attach to.
func maleMater(cur Cluster, next, afterNext *Cluster) (Symbol, bool) {
	if next == nil || next.hasVowel() || next.Dagesh || next.Sheva {
		return "", false
	}
	if afterNext != nil && afterNext.Letter == letterVav && !next.hasVowel() && !next.Sheva {
		// HolamHaserForVav never composes (it always stands alone), so only
		// the dagesh-shuruq and plain-holam compositions can claim next first.
		if (afterNext.Dagesh && !afterNext.hasVowel()) || (afterNext.Vowel == pointHolam && !afterNext.Dagesh) {
			return "", false
		}
	}
	switch cur.Vowel {
	case pointHiriq:
		if next.Letter == letterYod {
			return SymHiriqMaleYod, true
		}
	case pointTsere:
		switch next.Letter {
		case letterAlef:
			return SymTsereMaleAlef, true
		case letterHe:
			return SymTsereMaleHe, true
		case letterYod:
			return SymTsereMaleYod, true
		}
	case pointSegol:
		switch next.Letter {
		case letterAlef:
			return SymSegolMaleAlef, true
		case letterHe:
			return SymSegolMaleHe, true
		case letterYod:
			return SymSegolMaleYod, true
		}
	case pointPatah:
		switch next.Letter {
		case letterAlef:
			return SymPatahMaleAlef, true
		case letterHe:
			return SymPatahMaleHe, true
		}
	case pointQamats:
		switch next.Letter {
		case letterAlef:
			return SymQamatsMaleAlef, true
		case letterHe:
			return SymQamatsMaleHe, true
		}
	case pointHolam, pointHolamHaserVav:
		switch next.Letter {
		case letterAlef:
			return SymHolamMaleAlef, true
		case letterHe:
			return SymHolamMaleHe, true
		}
	}
	return "", false
}

// patahGenuvah resolves the "stolen patah" pronounced before a final
// guttural letter rather than after it.
func patahGenuvah(cur Cluster) (Symbol, bool) {
	if !cur.IsLast || cur.Vowel != pointPatah {
		return "", false
	}
	switch cur.Letter {
	case letterHet, letterAyin:
		return SymPatahGenuvah, true
	case letterHe:
		if cur.Dagesh {
			return SymPatahGenuvah, true
		}
	}
	return "", false
}

// qamatsQatan distinguishes qamats-qatan (short o) from qamats-gadol (long a)
// for an unstressed qamats. Stress is never guessed (see DESIGN.md): the
// be-/le- prefix configuration always sets AmbiguousQamats and
// LikelyPrefixBeLe instead.
func qamatsQatan(cur Cluster, prev, next *Cluster, wordFollowedByMaqaf bool, diag Diagnostics) (Symbol, Diagnostics) {
	if wordFollowedByMaqaf {
		return SymQamatsQatan, diag
	}
	if next != nil && next.Vowel == pointHatafQamats {
		return SymQamatsQatan, diag
	}
	if prev != nil && prev.IsFirst && prev.Sheva && (prev.Letter == letterBet || prev.Letter == letterLamed) {
		diag.AmbiguousQamats = true
		diag.LikelyPrefixBeLe = true
		return SymQamatsGadol, diag
	}
	return SymQamatsGadol, diag
}
