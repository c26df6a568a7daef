package hebphonics

import "testing"

func TestTokenizeAttachesDiacriticsToPrecedingLetter(t *testing.T) {
	res := normalize("בָּ") // bet + dagesh + qamats
	clusters, diag := tokenize(res.tokens)
	if diag.ambiguousShevaHataf {
		t.Fatal("unexpected ambiguous_sheva_hataf")
	}
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Letter != letterBet || !c.Dagesh || c.Vowel != pointQamats {
		t.Errorf("cluster = %+v, want bet+dagesh+qamats", c)
	}
	if !c.IsFirst || !c.IsLast {
		t.Error("single-cluster word should be both first and last")
	}
}

func TestTokenizeHatafWinsOverSheva(t *testing.T) {
	// alef + sheva + hataf-patah, in that input order: hataf must win.
	tokens := []classedRune{
		{classLetter, letterAlef},
		{classSheva, pointSheva},
		{classHataf, pointHatafPatah},
	}
	clusters, diag := tokenize(tokens)
	if !diag.ambiguousShevaHataf {
		t.Error("expected ambiguous_sheva_hataf to be flagged")
	}
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Sheva {
		t.Error("sheva should have been overwritten by the hataf vowel")
	}
	if c.Vowel != pointHatafPatah {
		t.Errorf("Vowel = %v, want hataf-patah", c.Vowel)
	}
}

func TestTokenizeMaqafFlagsLastCluster(t *testing.T) {
	tokens := []classedRune{
		{classLetter, letterKaf},
		{classDagesh, pointDageshOrMapiq},
		{classVowel, pointQamats},
		{classLetter, letterLamed},
		{classMaqaf, letterMaqaf},
	}
	clusters, _ := tokenize(tokens)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if !clusters[1].FollowedByMaqaf {
		t.Error("final cluster should be flagged followed_by_maqaf")
	}
	if clusters[0].FollowedByMaqaf {
		t.Error("non-final cluster should not carry the maqaf flag")
	}
}
