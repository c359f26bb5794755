package engine

import "unicode"

// tailAction builds the EditAction for a transform that rewrote
// buf.composed starting at index start, where oldLen is the length of
// buf.composed as rendered before the rewrite.
func tailAction(buf *SyllableBuffer, start, oldLen int) *EditAction {
	return &EditAction{DeleteCount: oldLen - start, Text: string(buf.composed[start:])}
}

func isGlideLetter(c rune) bool {
	b := lower(baseVowel(c))
	return b == 'i' || b == 'y' || b == 'u'
}

func lookupPair(pairs []vowelPair, c rune) (rune, bool) {
	for _, p := range pairs {
		if p.from == c {
			return p.to, true
		}
	}
	return 0, false
}

// findLastMatchingVowel scans composed backward up to maxDist code points
// for a rune with an entry in pairs, tolerating one glide (i/y/u)
// immediately adjacent to the scan origin so that patterns like "oi"+w
// still reach the o.
func findLastMatchingVowel(composed []rune, pairs []vowelPair, maxDist int) (int, rune, bool) {
	n := len(composed)
	glideSkipped := false
	i := n - 1
	for steps := 0; steps < maxDist && i >= 0; steps++ {
		c := composed[i]
		if newRune, ok := lookupPair(pairs, c); ok {
			return i, newRune, true
		}
		if isVowel(c) {
			if i == n-1 && !glideSkipped && isGlideLetter(c) {
				glideSkipped = true
				i--
				continue
			}
			break
		}
		i--
	}
	return -1, 0, false
}

// hornOf recases and re-tones r onto the horn/breve/circumflex base letter
// hornBase (lowercase), preserving r's existing tone and case.
func hornOf(r rune, hornBase rune) rune {
	target := hornBase
	if isUpper(baseVowel(r)) {
		target = unicode.ToUpper(hornBase)
	}
	if tone, ok := toneOf(r); ok {
		if t, ok2 := applyTone(target, tone); ok2 {
			return t
		}
	}
	return target
}

// tryConsonantTransform handles the d-stroke trigger (Telex `d`, VNI `9`):
// the most recent preceding d/D within distance 4 becomes đ/Đ.
func tryConsonantTransform(buf *SyllableBuffer, key rune) *EditAction {
	n := len(buf.composed)
	for d := 1; d <= 4 && n-d >= 0; d++ {
		idx := n - d
		c := buf.composed[idx]
		if c != 'd' && c != 'D' {
			continue
		}
		repl := 'đ'
		if c == 'D' {
			repl = 'Đ'
		}
		buf.composed[idx] = repl
		buf.lastTransformKey = key
		buf.lastWTransformKind = WNone
		return tailAction(buf, idx, n)
	}
	return nil
}

// trySimpleVowelTransform applies the trigger's free-transform row to the
// nearest matching vowel, re-applying any tone the vowel carried.
func trySimpleVowelTransform(buf *SyllableBuffer, method *Method, key rune) *EditAction {
	pairs, ok := method.SimpleVowelTriggers[lower(key)]
	if !ok {
		return nil
	}
	idx, newRune, found := findLastMatchingVowel(buf.composed, pairs, 4)
	if !found {
		return nil
	}
	oldLen := len(buf.composed)
	buf.composed[idx] = newRune
	buf.lastTransformKey = key
	buf.lastWTransformKind = WNone
	return tailAction(buf, idx, oldLen)
}

// tryCompoundHorn runs the ten ordered cases for the horn trigger
// (Telex `w`, VNI `7`); the first to match wins.
func tryCompoundHorn(buf *SyllableBuffer, method *Method, key rune) *EditAction {
	c := buf.composed
	n := len(c)
	at := func(i int) rune {
		if i < 0 || i >= n {
			return 0
		}
		return c[i]
	}
	isU := func(r rune) bool { return lower(baseVowel(r)) == 'u' }
	isO := func(r rune) bool { return lower(baseVowel(r)) == 'o' }
	isA := func(r rune) bool { return lower(baseVowel(r)) == 'a' }
	isUHorn := func(r rune) bool { return lower(baseVowel(r)) == 'ư' }
	notAfterQ := func(i int) bool { return !(i > 0 && (c[i-1] == 'q' || c[i-1] == 'Q')) }

	// 1: escape-uaw.
	if n >= 2 && isUHorn(at(n-2)) && !isTonedVowel(at(n-2)) && isA(at(n-1)) && !isTonedVowel(at(n-1)) {
		start, oldLen := n-2, n
		buf.composed[n-2] = hornOf(at(n-2), 'u')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WNone
		buf.suppressedTransform = key
		return tailAction(buf, start, oldLen)
	}

	// 2: u o <consonant(s)>, o is the last vowel.
	if n >= 2 {
		oIdx := -1
		for i := n - 1; i >= 0; i-- {
			if isVowel(c[i]) {
				oIdx = i
				break
			}
		}
		if oIdx >= 1 && isO(at(oIdx)) && !isTonedVowel(at(oIdx)) && oIdx+1 < n &&
			isU(at(oIdx-1)) && !isTonedVowel(at(oIdx-1)) && notAfterQ(oIdx-1) {
			start, oldLen := oIdx-1, n
			buf.composed[oIdx-1] = hornOf(at(oIdx-1), 'ư')
			buf.composed[oIdx] = hornOf(at(oIdx), 'ơ')
			buf.lastTransformKey = key
			buf.lastWTransformKind = WCompoundUoFinalConsonant
			return tailAction(buf, start, oldLen)
		}
	}

	// 3: u o i.
	if n >= 3 && isU(at(n-3)) && notAfterQ(n-3) && isO(at(n-2)) && lower(baseVowel(at(n-1))) == 'i' {
		start, oldLen := n-3, n
		buf.composed[n-3] = hornOf(at(n-3), 'ư')
		buf.composed[n-2] = hornOf(at(n-2), 'ơ')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WCompoundUoi
		return tailAction(buf, start, oldLen)
	}

	// 4: u u.
	if n >= 2 && isU(at(n-2)) && !isTonedVowel(at(n-2)) && notAfterQ(n-2) &&
		isU(at(n-1)) && !isTonedVowel(at(n-1)) {
		start, oldLen := n-2, n
		buf.composed[n-2] = hornOf(at(n-2), 'ư')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WNone
		return tailAction(buf, start, oldLen)
	}

	// 5: u o u.
	if n >= 3 && isU(at(n-3)) && !isTonedVowel(at(n-3)) && notAfterQ(n-3) &&
		isO(at(n-2)) && !isTonedVowel(at(n-2)) &&
		isU(at(n-1)) && !isTonedVowel(at(n-1)) {
		start, oldLen := n-3, n
		buf.composed[n-3] = hornOf(at(n-3), 'ư')
		buf.composed[n-2] = hornOf(at(n-2), 'ơ')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WCompoundUo
		return tailAction(buf, start, oldLen)
	}

	// 6: o u (swap in place).
	if n >= 2 && isO(at(n-2)) && !isTonedVowel(at(n-2)) &&
		isU(at(n-1)) && !isTonedVowel(at(n-1)) {
		start, oldLen := n-2, n
		oldO, oldU := at(n-2), at(n-1)
		buf.composed[n-2] = hornOf(oldO, 'ư')
		buf.composed[n-1] = hornOf(oldU, 'ơ')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WCompoundUo
		return tailAction(buf, start, oldLen)
	}

	// 7: u o (no following char).
	if n >= 2 && isU(at(n-2)) && !isTonedVowel(at(n-2)) && notAfterQ(n-2) &&
		isO(at(n-1)) && !isTonedVowel(at(n-1)) {
		start, oldLen := n-2, n
		buf.composed[n-2] = hornOf(at(n-2), 'ư')
		buf.composed[n-1] = hornOf(at(n-1), 'ơ')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WCompoundUo
		return tailAction(buf, start, oldLen)
	}

	// 8: u a (no following char).
	if n >= 2 && isU(at(n-2)) && !isTonedVowel(at(n-2)) && notAfterQ(n-2) &&
		isA(at(n-1)) && !isTonedVowel(at(n-1)) {
		start, oldLen := n-2, n
		buf.composed[n-2] = hornOf(at(n-2), 'ư')
		buf.lastTransformKey = key
		buf.lastWTransformKind = WCompoundUa
		return tailAction(buf, start, oldLen)
	}

	// 9: fallback free-transform.
	if idx, newRune, ok := findLastMatchingVowel(buf.composed, method.HornFallback, 4); ok {
		oldLen := n
		buf.composed[idx] = newRune
		buf.lastTransformKey = key
		buf.lastWTransformKind = WNone
		return tailAction(buf, idx, oldLen)
	}

	// 10: standalone.
	if n > 0 {
		ch := rune('ư')
		if unicode.IsUpper(key) {
			ch = 'Ư'
		}
		buf.composed = append(buf.composed, ch)
		buf.lastTransformKey = key
		buf.lastWTransformKind = WStandalone
		return &EditAction{DeleteCount: 0, Text: string(ch)}
	}

	return nil
}

// tryToneMark places, replaces, or (for the remove key) strips the tone on
// the target vowel.
func tryToneMark(buf *SyllableBuffer, method *Method, key rune, placement TonePlacement) *EditAction {
	lk := lower(key)
	limit := len(buf.composed)

	if lk == method.RemoveToneKey {
		anyToned := false
		for _, c := range buf.composed {
			if isTonedVowel(c) {
				anyToned = true
				break
			}
		}
		if !anyToned {
			return nil
		}
		earliest := clearOtherTones(buf.composed, limit, -1)
		buf.lastTransformKey = key
		buf.lastWTransformKind = WNone
		return tailAction(buf, earliest, limit)
	}

	tone, ok := method.ToneFor(key)
	if !ok {
		return nil
	}
	target, ok := targetVowelIndex(buf.composed, limit, placement)
	if !ok {
		return nil
	}
	start := clearOtherTones(buf.composed, limit, target)
	toned, ok := applyTone(baseVowel(buf.composed[target]), tone)
	if !ok {
		return nil
	}
	buf.composed[target] = toned
	if target < start {
		start = target
	}
	buf.lastTransformKey = key
	buf.lastWTransformKind = WNone
	return tailAction(buf, start, limit)
}

// hornAutoFixBeforeConsonant rewrites a trailing "ư o" to "ư ơ" when a
// consonant is about to follow. It mutates buf.composed in place and
// returns the touched index, or (-1, false) if the pattern doesn't match.
// Callers combine this with whatever they append next using tailAction,
// since this step never changes buf's length by itself.
func hornAutoFixBeforeConsonant(buf *SyllableBuffer) (int, bool) {
	n := len(buf.composed)
	if n < 2 {
		return -1, false
	}
	uIdx, oIdx := n-2, n-1
	u, o := buf.composed[uIdx], buf.composed[oIdx]
	if lower(baseVowel(u)) != 'ư' || lower(baseVowel(o)) != 'o' {
		return -1, false
	}
	if uIdx > 0 {
		if p := buf.composed[uIdx-1]; p == 'q' || p == 'Q' {
			return -1, false
		}
	}
	buf.composed[oIdx] = hornOf(o, 'ơ')
	return oIdx, true
}
