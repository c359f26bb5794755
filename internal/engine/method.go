package engine

import "unicode"

// Method is the capability record that parameterizes the dispatcher over
// Telex vs VNI: a selector enum plus per-method data.
type Method struct {
	Kind InputMethod

	// ToneKeys maps a literal tone-trigger key (lowercased) to its internal
	// tone identifier. Does not include the remove-tone key.
	ToneKeys map[rune]toneKey
	// RemoveToneKey is the literal key that strips a tone ('z' or '0').
	RemoveToneKey rune

	// ConsonantTrigger is the d-stroke trigger ('d' or '9').
	ConsonantTrigger rune
	// HornTrigger is the compound-horn trigger ('w' or '7').
	HornTrigger rune

	// SimpleVowelTriggers holds the non-horn VOWEL_TRANSFORMS rows, keyed by
	// the literal trigger key.
	SimpleVowelTriggers map[rune][]vowelPair
	// HornFallback is the 'w'/'7' row used as compound-dispatch case 9.
	HornFallback []vowelPair
	// Untransform maps a transformed vowel back to its trigger key and
	// original character, for the escape engine.
	Untransform map[rune]untransformEntry

	isBoundary func(r rune) bool
}

// IsToneKey reports whether r (any case) is a tone-trigger or the
// remove-tone key for this method.
func (m *Method) IsToneKey(r rune) bool {
	lr := lower(r)
	if lr == m.RemoveToneKey {
		return true
	}
	_, ok := m.ToneKeys[lr]
	return ok
}

// ToneFor returns the internal tone for a literal trigger key.
func (m *Method) ToneFor(r rune) (toneKey, bool) {
	t, ok := m.ToneKeys[lower(r)]
	return t, ok
}

// IsWordBoundary reports whether r ends a syllable for this method.
func (m *Method) IsWordBoundary(r rune) bool { return m.isBoundary(r) }

func isASCIIBoundary(r rune, digitsAreBoundary bool) bool {
	if r > unicode.MaxASCII {
		return false
	}
	if unicode.IsSpace(r) {
		return true
	}
	if r >= '0' && r <= '9' {
		return digitsAreBoundary
	}
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	return false
}

var telexMethod = &Method{
	Kind: Telex,
	ToneKeys: map[rune]toneKey{
		's': toneAcute, 'f': toneGrave, 'r': toneHook, 'x': toneTilde, 'j': toneDot,
	},
	RemoveToneKey:       'z',
	ConsonantTrigger:    'd',
	HornTrigger:         'w',
	SimpleVowelTriggers: telexVowelTransforms,
	HornFallback:        telexHornFallback,
	Untransform:         vowelUntransforms,
	isBoundary:          func(r rune) bool { return isASCIIBoundary(r, true) },
}

var vniMethod = &Method{
	Kind: VNI,
	ToneKeys: map[rune]toneKey{
		'1': toneAcute, '2': toneGrave, '3': toneHook, '4': toneTilde, '5': toneDot,
	},
	RemoveToneKey:       '0',
	ConsonantTrigger:    '9',
	HornTrigger:         '7',
	SimpleVowelTriggers: vniVowelTransforms,
	HornFallback:        vniHornFallback,
	Untransform:         vniUntransform,
	isBoundary:          func(r rune) bool { return isASCIIBoundary(r, false) },
}

func methodFor(k InputMethod) *Method {
	if k == VNI {
		return vniMethod
	}
	return telexMethod
}
