package engine

// effectiveVowelIndices returns the indices of composed[0:limit] that count
// as vowels for tone-placement purposes: a u/U right after q/Q is not a
// vowel nucleus here, and an i/I right after g/G is excluded when another
// vowel follows it (treating "gi" as a consonant cluster).
func effectiveVowelIndices(composed []rune, limit int) []int {
	var raw []int
	for i := 0; i < limit; i++ {
		if isVowel(composed[i]) {
			raw = append(raw, i)
		}
	}

	hasLaterVowel := func(i int) bool {
		for _, p := range raw {
			if p > i {
				return true
			}
		}
		return false
	}

	eff := make([]int, 0, len(raw))
	for _, i := range raw {
		c := composed[i]
		if lower(baseVowel(c)) == 'u' && i > 0 {
			p := composed[i-1]
			if p == 'q' || p == 'Q' {
				continue
			}
		}
		if lower(baseVowel(c)) == 'i' && i > 0 {
			p := composed[i-1]
			if (p == 'g' || p == 'G') && hasLaterVowel(i) {
				continue
			}
		}
		eff = append(eff, i)
	}
	return eff
}

// targetVowelIndex picks the vowel within composed[0:limit] that must carry
// the tone mark. Returns false if there is no effective vowel.
func targetVowelIndex(composed []rune, limit int, placement TonePlacement) (int, bool) {
	eff := effectiveVowelIndices(composed, limit)
	if len(eff) == 0 {
		return 0, false
	}
	if len(eff) == 1 {
		return eff[0], true
	}

	lastNucleusOnly := -1
	for _, idx := range eff {
		if isNucleusOnly(composed[idx]) {
			lastNucleusOnly = idx
		}
	}
	if lastNucleusOnly != -1 {
		return lastNucleusOnly, true
	}

	if len(eff) == 2 {
		first, second := eff[0], eff[1]
		if placement == NucleusOnly {
			b1 := lower(baseVowel(composed[first]))
			b2 := lower(baseVowel(composed[second]))
			if (b1 == 'u' && b2 == 'y') || (b1 == 'o' && b2 == 'a') || (b1 == 'o' && b2 == 'e') {
				return second, true
			}
		}
		if second+1 < limit {
			return second, true
		}
		return first, true
	}

	return eff[(len(eff)-1)/2], true
}

// findToneIndex returns the index and tone of the (single, per the
// clear-other-tones invariant) toned vowel in composed, if any.
func findToneIndex(composed []rune) (int, toneKey, bool) {
	for i, c := range composed {
		if t, ok := toneOf(c); ok {
			return i, t, true
		}
	}
	return 0, 0, false
}

// clearOtherTones resets every toned vowel in composed[0:limit] except idx
// to its base form, returning the earliest index touched (or limit if
// none were touched, meaning the replacement window need not extend).
func clearOtherTones(composed []rune, limit int, keep int) int {
	earliest := limit
	for i := 0; i < limit; i++ {
		if i == keep {
			continue
		}
		if isTonedVowel(composed[i]) {
			composed[i] = baseVowel(composed[i])
			if i < earliest {
				earliest = i
			}
		}
	}
	return earliest
}

// repositionTone moves a misplaced tone mark to the computed target vowel.
// Returns nil if no reposition is needed.
func repositionTone(buf *SyllableBuffer, placement TonePlacement) *EditAction {
	limit := len(buf.composed)
	cur, tone, ok := findToneIndex(buf.composed)
	if !ok {
		return nil
	}
	target, ok := targetVowelIndex(buf.composed, limit, placement)
	if !ok || target == cur {
		return nil
	}

	toned, ok := applyTone(buf.composed[target], tone)
	if !ok {
		return nil
	}
	buf.composed[cur] = baseVowel(buf.composed[cur])
	buf.composed[target] = toned

	minIdx := cur
	if target < minIdx {
		minIdx = target
	}
	return &EditAction{
		DeleteCount: limit - minIdx,
		Text:        string(buf.composed[minIdx:]),
	}
}
