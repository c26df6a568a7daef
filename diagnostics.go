package hebphonics

// Diagnostics is the set of recoverable ambiguities a parse may raise
// Diagnostics are purely informational: they never alter symbols.
type Diagnostics struct {
	AmbiguousQamats     bool
	AmbiguousShevaHataf bool
	MissingShinSinDot   bool
	HasNoNiqqud         bool
	UnknownCodepoints   bool
	LikelyPrefixBeLe    bool
}

// merge ORs two diagnostic sets together, the way a fold accumulates
// flags raised by any stage without ever clearing one already set.
func (d Diagnostics) merge(other Diagnostics) Diagnostics {
	return Diagnostics{
		AmbiguousQamats:     d.AmbiguousQamats || other.AmbiguousQamats,
		AmbiguousShevaHataf: d.AmbiguousShevaHataf || other.AmbiguousShevaHataf,
		MissingShinSinDot:   d.MissingShinSinDot || other.MissingShinSinDot,
		HasNoNiqqud:         d.HasNoNiqqud || other.HasNoNiqqud,
		UnknownCodepoints:   d.UnknownCodepoints || other.UnknownCodepoints,
		LikelyPrefixBeLe:    d.LikelyPrefixBeLe || other.LikelyPrefixBeLe,
	}
}
