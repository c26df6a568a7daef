package hebphonics

import "testing"

func classifySymbols(clusters []Cluster, followedByMaqaf bool) []Symbol {
	out, _, _ := classify(markFirstLast(clusters), followedByMaqaf)
	return out
}

func TestClassifyDageshQalAtWordStart(t *testing.T) {
	clusters := []Cluster{{Letter: letterBet, Dagesh: true, Vowel: pointQamats}}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymBet, SymDageshQal, SymQamatsGadol}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyDageshHazaqAfterVowel(t *testing.T) {
	clusters := []Cluster{
		{Letter: letterBet, Vowel: pointPatah},
		{Letter: letterKaf, Dagesh: true, Vowel: pointQamats},
	}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymVet, SymPatah, SymKaf, SymDageshHazaq, SymQamatsGadol}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyMapiqAlef(t *testing.T) {
	clusters := []Cluster{{Letter: letterAlef, Dagesh: true, Vowel: pointPatah}}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymMapiqAlef, SymPatah}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyShinWithoutDotFlagsMissing(t *testing.T) {
	clusters := []Cluster{{Letter: letterShin, Vowel: pointHiriq}}
	out, _, diag := classify(markFirstLast(clusters), false)
	if !diag.MissingShinSinDot {
		t.Error("expected missing_shin_sin_dot to be flagged")
	}
	if out[0] != SymShin {
		t.Errorf("ambiguous shin should default to 'shin', got %v", out[0])
	}
}

func TestClassifyShevaNaAtWordStart(t *testing.T) {
	clusters := []Cluster{
		{Letter: letterBet, Sheva: true},
		{Letter: letterResh, Vowel: pointTsere},
	}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymVet, SymShevaNa, SymResh, SymTsere}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyShevaNahAtWordEnd(t *testing.T) {
	clusters := []Cluster{
		{Letter: letterMem, Vowel: pointHiriq},
		{Letter: letterKaf, Sheva: true},
	}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymMem, SymHiriq, SymKhaf, SymShevaNah}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyVavPlainHolamComposesIntoHolamMaleVav(t *testing.T) {
	clusters := []Cluster{
		{Letter: letterAlef},
		{Letter: letterVav, Vowel: pointHolam},
		{Letter: letterResh},
	}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymAlef, SymHolamMaleVav, SymResh}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyVavPlainHolamStandaloneWhenPrevNotBare(t *testing.T) {
	clusters := []Cluster{
		{Letter: letterBet, Vowel: pointPatah},
		{Letter: letterVav, Vowel: pointHolam},
	}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymVet, SymPatah, SymVav, SymHolamHaser}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyVavHolamHaserForVavNeverComposes(t *testing.T) {
	clusters := []Cluster{
		{Letter: letterAlef},
		{Letter: letterVav, Vowel: pointHolamHaserVav, HolamHaserForVav: true},
		{Letter: letterResh},
	}
	got := classifySymbols(clusters, false)
	want := []Symbol{SymAlef, SymVav, SymHolamHaser, SymResh}
	if !symbolsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func markFirstLast(clusters []Cluster) []Cluster {
	for i := range clusters {
		clusters[i].IsFirst = i == 0
		clusters[i].IsLast = i == len(clusters)-1
	}
	return clusters
}

func symbolsEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
