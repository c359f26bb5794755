package engine

// EngineState is the facade (C8): it owns the active syllable buffer, the
// word history, and the four global options, and is the only type host
// code needs to drive the engine one keystroke at a time.
type EngineState struct {
	cfg     EngineConfig
	buffer  *SyllableBuffer
	history *History
}

// NewEngineState constructs an engine with the given configuration.
func NewEngineState(cfg EngineConfig) *EngineState {
	return &EngineState{cfg: cfg, buffer: newSyllableBuffer(), history: newHistory()}
}

func (e *EngineState) method() *Method { return methodFor(e.cfg.InputMethod) }

// SetInputMethod switches between Telex and VNI.
func (e *EngineState) SetInputMethod(m InputMethod) { e.cfg.InputMethod = m }

// SetTonePlacement switches between Orthographic and NucleusOnly placement.
func (e *EngineState) SetTonePlacement(p TonePlacement) { e.cfg.TonePlacement = p }

// SetAutoFixTone toggles automatic tone repositioning.
func (e *EngineState) SetAutoFixTone(b bool) { e.cfg.AutoFixTone = b }

// SetOutputEncoding switches between Precomposed and Decomposed output.
func (e *EngineState) SetOutputEncoding(o OutputEncoding) { e.cfg.OutputEncoding = o }

// Reset clears the active syllable and the entire word history.
func (e *EngineState) Reset() {
	e.buffer.clear()
	e.history.reset()
}

// Preedit returns the currently composed text for the active syllable, in
// the configured output encoding. Host facades that render a full preedit
// string (rather than replaying delete/insert deltas) use this instead of
// accumulating EditActions themselves.
func (e *EngineState) Preedit() string {
	if e.cfg.OutputEncoding == Decomposed {
		return decompose(e.buffer.composedString())
	}
	return e.buffer.composedString()
}

// HasActiveSyllable reports whether a syllable is currently being composed.
func (e *EngineState) HasActiveSyllable() bool { return !e.buffer.empty() }

// Process feeds one keystroke into the engine and returns the edit action
// the host should apply, or nil if the host should simply insert the
// keystroke literally. A non-nil action is sized against the display as it
// was before this keystroke: the host does not insert the key itself.
func (e *EngineState) Process(key rune) *EditAction {
	m := e.method()
	if m.IsWordBoundary(key) {
		e.history.commitWord(e.buffer)
		e.history.appendBoundary(key)
		return nil
	}
	action := e.processChar(key)
	if action == nil {
		// processChar only returns nil after appending exactly the literal
		// key to buf.composed (every dispatch step either returns its own
		// action or falls through to the literal append at the bottom).
		// The host mirrors that append itself, so renderedLen — which
		// applyEncoding's Decomposed branch depends on to delete the right
		// number of currently-displayed runes — has to track it too.
		e.buffer.renderedLen++
		return nil
	}
	return e.applyEncoding(action)
}

// processChar runs the fixed-order dispatch — escape, suppressed-key,
// consonant, vowel/compound, tone, horn auto-fix, tone reposition — against
// a single non-boundary keystroke.
func (e *EngineState) processChar(key rune) *EditAction {
	buf := e.buffer
	previousComposedLen := len(buf.composed)

	lk := lower(key)
	if lk != lower(buf.suppressedTransform) {
		buf.suppressedTransform = noKey
	}
	buf.raw = append(buf.raw, key)

	if buf.isForeignMode || buf.transformsLocked {
		buf.composed = append(buf.composed, key)
		return nil
	}

	m := e.method()

	// 1. escape.
	if action := tryEscape(buf, m, key); action != nil {
		if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
			return a
		}
		return action
	}

	// 2. suppressed-key path.
	if buf.suppressedTransform != noKey && lk == lower(buf.suppressedTransform) {
		buf.composed = append(buf.composed, key)
		var toneAction *EditAction
		if e.cfg.AutoFixTone {
			toneAction = repositionTone(buf, e.cfg.TonePlacement)
		}
		if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
			return a
		}
		return toneAction
	}

	// 3. consonant transform.
	if lk == m.ConsonantTrigger {
		if action := tryConsonantTransform(buf, key); action != nil {
			if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
				return a
			}
			return action
		}
	}

	// 4. vowel / compound transform.
	if lk == m.HornTrigger {
		if action := tryCompoundHorn(buf, m, key); action != nil {
			action = e.finishWithReposition(buf, previousComposedLen, action)
			if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
				return a
			}
			return action
		}
	} else if _, ok := m.SimpleVowelTriggers[lk]; ok {
		if action := trySimpleVowelTransform(buf, m, key); action != nil {
			action = e.finishWithReposition(buf, previousComposedLen, action)
			if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
				return a
			}
			return action
		}
	}

	// 5. tone mark.
	if m.IsToneKey(key) {
		if action := tryToneMark(buf, m, key, e.cfg.TonePlacement); action != nil {
			if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
				return a
			}
			return action
		}
	}

	// Nothing in 3-5 matched: the key is typed literally, then 6 and 7 run.
	hornStart := -1
	if !isVowel(key) {
		if s, ok := hornAutoFixBeforeConsonant(buf); ok {
			hornStart = s
		}
	}
	oldLen := len(buf.composed)
	buf.composed = append(buf.composed, key)
	buf.lastTransformKey = noKey
	buf.lastWTransformKind = WNone

	var toneAction *EditAction
	if e.cfg.AutoFixTone {
		if reposition := repositionTone(buf, e.cfg.TonePlacement); reposition != nil {
			// Rebuild against the pre-append oldLen, not the post-append
			// length repositionTone computed its own DeleteCount against:
			// when the reposition is triggered by the character just
			// appended being the last buffer char, the action must not
			// re-delete/re-emit that character, so the baseline here is one
			// shorter than the buffer's current length.
			repositionStart := len(buf.composed) - reposition.DeleteCount
			toneAction = tailAction(buf, repositionStart, oldLen)
		}
	}
	if a := checkInvalidSyllable(buf, previousComposedLen); a != nil {
		return a
	}
	if toneAction != nil {
		return toneAction
	}
	if hornStart >= 0 {
		return tailAction(buf, hornStart, oldLen)
	}
	return nil
}

// finishWithReposition runs tone repositioning on the heels of a
// vowel/compound transform: a transform that reshapes the vowel cluster
// (e.g. the second "e" of
// "tuyetj"+"e" turning a trailing "e" into "ê") can change which vowel the
// tone belongs on, so auto-fix-tone must get a chance to move it before the
// keystroke's action is returned. oldLen is the composed length before this
// keystroke's dispatch began, matching the baseline action.DeleteCount was
// computed against; the combined action spans from whichever of the two
// edits starts earliest through the current end of the buffer.
func (e *EngineState) finishWithReposition(buf *SyllableBuffer, oldLen int, action *EditAction) *EditAction {
	if action == nil || !e.cfg.AutoFixTone {
		return action
	}
	reposition := repositionTone(buf, e.cfg.TonePlacement)
	if reposition == nil {
		return action
	}
	actionStart := oldLen - action.DeleteCount
	repositionStart := len(buf.composed) - reposition.DeleteCount
	start := actionStart
	if repositionStart < start {
		start = repositionStart
	}
	return tailAction(buf, start, oldLen)
}

// applyEncoding converts an internal (precomposed) edit action into the
// configured output encoding, keeping buf.renderedLen — the rune count of
// what the host currently displays for this syllable — in sync so the
// next action's delete count stays correct regardless of encoding.
func (e *EngineState) applyEncoding(action *EditAction) *EditAction {
	if action == nil {
		return nil
	}
	buf := e.buffer
	if e.cfg.OutputEncoding == Precomposed {
		buf.renderedLen = buf.renderedLen - action.DeleteCount + runeCount(action.Text)
		return action
	}
	full := decompose(buf.composedString())
	out := &EditAction{DeleteCount: buf.renderedLen, Text: full}
	buf.renderedLen = runeCount(full)
	return out
}

// DeleteLastCharacter implements the backspace semantics: undo the last
// raw keystroke of the active syllable, or — if the active syllable is
// empty — consume a trailing boundary character and, once none remain,
// restore the previous committed word for further editing.
func (e *EngineState) DeleteLastCharacter() *EditAction {
	buf := e.buffer
	if !buf.empty() {
		return e.applyEncoding(e.deleteWithinActiveSyllable())
	}

	if e.history.empty() {
		return nil
	}
	last := e.history.last()

	if last.IsBoundary() {
		if len(last.Chars) > 1 {
			last.Chars = last.Chars[:len(last.Chars)-1]
			return &EditAction{DeleteCount: 1, Text: ""}
		}
		e.history.popLast()
		if prev := e.history.last(); prev != nil && prev.IsWord() {
			word := e.history.popLast()
			e.restoreWordSegment(word)
		}
		return &EditAction{DeleteCount: 1, Text: ""}
	}

	if last.IsWord() {
		word := e.history.popLast()
		e.restoreWordSegment(word)
		return e.applyEncoding(e.deleteWithinActiveSyllable())
	}

	return nil
}

func (e *EngineState) restoreWordSegment(seg HistorySegment) {
	buf := e.buffer
	buf.composed = append([]rune(nil), seg.Composed...)
	buf.raw = append([]rune(nil), seg.Raw...)
	buf.isForeignMode = seg.IsForeignMode
	buf.transformsLocked = seg.TransformsLocked
	buf.lastTransformKey = noKey
	buf.lastWTransformKind = WNone
	buf.suppressedTransform = noKey
	if e.cfg.OutputEncoding == Decomposed {
		buf.renderedLen = runeCount(decompose(buf.composedString()))
	} else {
		buf.renderedLen = len(buf.composed)
	}
}

// deleteWithinActiveSyllable pops one code point from both composed and
// raw. composed and raw can have diverged in
// length (a consumed trigger key leaves composed shorter than the raw
// keystrokes that produced it), so this
// is two independent truncations, not a replay of the remaining raw
// through the dispatcher — the displayed tail is already correct and only
// needs its very last code point removed.
func (e *EngineState) deleteWithinActiveSyllable() *EditAction {
	buf := e.buffer
	if len(buf.composed) == 0 {
		return nil
	}
	buf.composed = buf.composed[:len(buf.composed)-1]
	if len(buf.raw) > 0 {
		buf.raw = buf.raw[:len(buf.raw)-1]
	}
	buf.lastTransformKey = noKey
	buf.lastWTransformKind = WNone
	buf.suppressedTransform = noKey
	buf.isForeignMode = hasMultipleVowelClusters(buf.composed)
	if len(buf.composed) == 0 {
		buf.transformsLocked = false
	}
	return &EditAction{DeleteCount: 1, Text: ""}
}
