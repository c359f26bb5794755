package engine

import "unicode"

var allToneKeys = []toneKey{toneAcute, toneGrave, toneHook, toneTilde, toneDot}

// expandTransformPairs builds the full from→to pair list for a simple vowel
// transform (e.g. a→â): the bare base/upper pair plus every toned variant on
// both sides, so a toned source re-applies the same tone to the new base.
func expandTransformPairs(fromBase, toBase rune) []vowelPair {
	fromUpper := unicode.ToUpper(fromBase)
	toUpper := unicode.ToUpper(toBase)
	pairs := []vowelPair{{fromBase, toBase}, {fromUpper, toUpper}}
	for _, tone := range allToneKeys {
		if ft, ok := vowelToToned[fromBase][tone]; ok {
			if tt, ok2 := vowelToToned[toBase][tone]; ok2 {
				pairs = append(pairs, vowelPair{ft, tt})
			}
		}
		if ft, ok := vowelToToned[fromUpper][tone]; ok {
			if tt, ok2 := vowelToToned[toUpper][tone]; ok2 {
				pairs = append(pairs, vowelPair{ft, tt})
			}
		}
	}
	return pairs
}

// telexVowelTransforms: trigger letter -> (from, to) pairs for the simple
// (non-horn) vowel transforms.
var telexVowelTransforms = map[rune][]vowelPair{
	'a': expandTransformPairs('a', 'â'),
	'e': expandTransformPairs('e', 'ê'),
	'o': expandTransformPairs('o', 'ô'),
}

// telexHornFallback is the 'w' row of VOWEL_TRANSFORMS used as case 9 of the
// compound-horn dispatch and, with an initial w/W keystroke, as a bare
// breve/horn trigger (aw→ă, ow→ơ, uw→ư).
var telexHornFallback = concatPairs(
	expandTransformPairs('a', 'ă'),
	expandTransformPairs('o', 'ơ'),
	expandTransformPairs('u', 'ư'),
)

// vniVowelTransforms: VNI '6' (circumflex) applies to a/e/o; '8' (breve)
// applies only to a.
var vniVowelTransforms = map[rune][]vowelPair{
	'6': concatPairs(
		expandTransformPairs('a', 'â'),
		expandTransformPairs('e', 'ê'),
		expandTransformPairs('o', 'ô'),
	),
	'8': expandTransformPairs('a', 'ă'),
}

// vniHornFallback is the '7' row: horn applies to o and u.
var vniHornFallback = concatPairs(
	expandTransformPairs('o', 'ơ'),
	expandTransformPairs('u', 'ư'),
)

func concatPairs(groups ...[]vowelPair) []vowelPair {
	var out []vowelPair
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
