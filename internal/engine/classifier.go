package engine

import "unicode"

// isVowel reports whether r is a Vietnamese vowel letter: ASCII a/e/i/o/u/y
// in either case, plus every base or toned vowel in the mapping tables.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	if baseVowels[r] {
		return true
	}
	_, ok := tonedToBase[r]
	return ok
}

// lower case-folds a single Vietnamese letter using the standard Unicode
// mapping, which correctly handles the toned/diacritic letters.
func lower(r rune) rune { return unicode.ToLower(r) }

// isUpper reports whether r is its own uppercase form and differs from its
// lowercase form (used to preserve case across transforms).
func isUpper(r rune) bool { return unicode.IsUpper(r) }

// baseVowel returns the untoned base letter for any vowel, preserving case.
// For an already-base vowel it is the identity.
func baseVowel(r rune) rune {
	if bt, ok := tonedToBase[r]; ok {
		return bt.base
	}
	return r
}

// toneOf returns the tone carried by r and true, or the zero toneKey and
// false if r carries no tone.
func toneOf(r rune) (toneKey, bool) {
	if bt, ok := tonedToBase[r]; ok {
		return bt.tone, true
	}
	return 0, false
}

// isNucleusOnly reports whether r is one of ă â ê ô ơ ư (or their toned or
// uppercase variants) — vowels that always carry the tone when present.
func isNucleusOnly(r rune) bool {
	if nucleusOnlyVowels[r] {
		return true
	}
	if bt, ok := tonedToBase[r]; ok {
		return nucleusOnlyVowels[bt.base]
	}
	return false
}

// isTonedVowel reports whether r carries any tone mark.
func isTonedVowel(r rune) bool {
	_, ok := tonedToBase[r]
	return ok
}

// applyTone composes base with tone, returning the toned code point.
func applyTone(base rune, tone toneKey) (rune, bool) {
	tones, ok := vowelToToned[base]
	if !ok {
		return 0, false
	}
	toned, ok := tones[tone]
	return toned, ok
}

// sameLetter reports whether a and b are the same Vietnamese letter
// disregarding case, comparing by base vowel identity when either is a
// vowel and by case-fold otherwise.
func sameLetter(a, b rune) bool {
	if isVowel(a) && isVowel(b) {
		return lower(baseVowel(a)) == lower(baseVowel(b))
	}
	return lower(a) == lower(b)
}
