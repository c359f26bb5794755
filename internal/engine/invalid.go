package engine

// hasMultipleVowelClusters reports whether composed contains more than one
// run of vowels separated by at least one consonant.
func hasMultipleVowelClusters(composed []rune) bool {
	clusters := 0
	inCluster := false
	for _, r := range composed {
		if isVowel(r) {
			if !inCluster {
				clusters++
				inCluster = true
			}
		} else {
			inCluster = false
		}
	}
	return clusters > 1
}

// checkInvalidSyllable reverts to the literal keystrokes when the composed
// buffer spans more than one vowel cluster: such a syllable can't be
// Vietnamese, so transforming stops until the next word boundary.
func checkInvalidSyllable(buf *SyllableBuffer, previousComposedLen int) *EditAction {
	if !hasMultipleVowelClusters(buf.composed) {
		return nil
	}

	oldComposed := string(buf.composed)
	buf.isForeignMode = true
	buf.transformsLocked = false
	buf.lastTransformKey = noKey
	buf.lastWTransformKind = WNone
	buf.suppressedTransform = noKey

	buf.composed = append(buf.composed[:0], buf.raw...)

	if oldComposed == string(buf.composed) {
		return nil
	}
	return &EditAction{DeleteCount: previousComposedLen, Text: string(buf.raw)}
}
