package engine

import "unicode"

// finishEscape applies the sticky post-conditions common to every escape
// case: the transform markers are cleared and the triggering key is locked
// as a literal for the rest of the syllable.
func finishEscape(buf *SyllableBuffer, key rune) {
	buf.lastTransformKey = noKey
	buf.lastWTransformKind = WNone
	buf.suppressedTransform = key
	buf.transformsLocked = true
}

// reverseHornCompound undoes a compound horn transform of the given kind,
// returning the index where the reversal starts. It mirrors the forward
// patterns in tryCompoundHorn exactly.
func reverseHornCompound(buf *SyllableBuffer, kind WTransformKind) (int, bool) {
	c := buf.composed
	n := len(c)

	switch kind {
	case WCompoundUoFinalConsonant:
		oIdx := -1
		for i := n - 1; i >= 0; i-- {
			if isVowel(c[i]) {
				oIdx = i
				break
			}
		}
		if oIdx < 1 {
			return -1, false
		}
		uIdx := oIdx - 1
		if lower(baseVowel(c[uIdx])) != 'ư' || lower(baseVowel(c[oIdx])) != 'ơ' {
			return -1, false
		}
		c[uIdx] = hornOf(c[uIdx], 'u')
		c[oIdx] = hornOf(c[oIdx], 'o')
		return uIdx, true

	case WCompoundUoi:
		if n < 3 {
			return -1, false
		}
		uIdx, oIdx := n-3, n-2
		if lower(baseVowel(c[uIdx])) != 'ư' || lower(baseVowel(c[oIdx])) != 'ơ' {
			return -1, false
		}
		c[uIdx] = hornOf(c[uIdx], 'u')
		c[oIdx] = hornOf(c[oIdx], 'o')
		return uIdx, true

	case WCompoundUo:
		if n >= 3 {
			uIdx, oIdx := n-3, n-2
			if lower(baseVowel(c[uIdx])) == 'ư' && lower(baseVowel(c[oIdx])) == 'ơ' && lower(baseVowel(c[n-1])) == 'u' {
				c[uIdx] = hornOf(c[uIdx], 'u')
				c[oIdx] = hornOf(c[oIdx], 'o')
				return uIdx, true
			}
		}
		if n >= 2 {
			a, b := c[n-2], c[n-1]
			if lower(baseVowel(a)) == 'ư' && lower(baseVowel(b)) == 'ơ' {
				c[n-2] = hornOf(a, 'u')
				c[n-1] = hornOf(b, 'o')
				return n - 2, true
			}
		}
		return -1, false

	case WCompoundUa:
		if n < 2 {
			return -1, false
		}
		uIdx := n - 2
		if lower(baseVowel(c[uIdx])) != 'ư' {
			return -1, false
		}
		c[uIdx] = hornOf(c[uIdx], 'u')
		return uIdx, true
	}

	return -1, false
}

// tryEscape undoes the most recent transform when the user types the same
// key that produced it.
func tryEscape(buf *SyllableBuffer, method *Method, key rune) *EditAction {
	if buf.lastTransformKey == noKey || lower(key) != lower(buf.lastTransformKey) {
		return nil
	}
	n := len(buf.composed)

	// 1: horn standalone.
	if buf.lastWTransformKind == WStandalone && n > 0 {
		last := buf.composed[n-1]
		if lower(baseVowel(last)) == 'ư' {
			w := rune('w')
			if isUpper(baseVowel(last)) {
				w = 'W'
			}
			oldLen := n
			buf.composed[n-1] = w
			finishEscape(buf, key)
			return tailAction(buf, n-1, oldLen)
		}
	}

	// 2: horn compound.
	if buf.lastWTransformKind != WNone && buf.lastWTransformKind != WStandalone {
		if start, ok := reverseHornCompound(buf, buf.lastWTransformKind); ok {
			oldLen := n
			buf.composed = append(buf.composed, key)
			finishEscape(buf, key)
			return tailAction(buf, start, oldLen)
		}
	}

	// 3: dd.
	if n > 0 {
		last := buf.composed[n-1]
		if last == 'đ' || last == 'Đ' {
			oldLen := n
			first := byte('d')
			if last == 'Đ' {
				first = 'D'
			}
			second := byte('d')
			if unicode.IsUpper(key) {
				second = 'D'
			}
			buf.composed = buf.composed[:n-1]
			buf.composed = append(buf.composed, rune(first), rune(second))
			finishEscape(buf, key)
			return tailAction(buf, n-1, oldLen)
		}
	}

	// 4: adjacent un-transform by table.
	if n > 0 {
		last := buf.composed[n-1]
		if entry, ok := method.Untransform[last]; ok && lower(entry.key) == lower(key) {
			oldLen := n
			buf.composed[n-1] = entry.original
			buf.composed = append(buf.composed, key)
			finishEscape(buf, key)
			return tailAction(buf, n-1, oldLen)
		}
	}

	// 5: non-adjacent un-transform.
	if lower(key) == 'a' || lower(key) == 'e' || lower(key) == 'o' || key == method.HornTrigger || unicode.ToUpper(key) == unicode.ToUpper(method.HornTrigger) {
		for i := n - 1; i >= 0; i-- {
			entry, ok := method.Untransform[buf.composed[i]]
			if !ok {
				continue
			}
			if lower(entry.key) != lower(key) {
				continue
			}
			oldLen := n
			buf.composed[i] = entry.original
			buf.composed = append(buf.composed, key)
			finishEscape(buf, key)
			return tailAction(buf, i, oldLen)
		}
	}

	// 6: repeated tone.
	if method.IsToneKey(key) {
		if idx, tone, ok := findToneIndex(buf.composed); ok {
			if t, _ := method.ToneFor(key); t == tone {
				oldLen := n
				buf.composed[idx] = baseVowel(buf.composed[idx])
				buf.composed = append(buf.composed, key)
				finishEscape(buf, key)
				return tailAction(buf, idx, oldLen)
			}
		}
	}

	return nil
}
