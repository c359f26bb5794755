package engine

// History is the bounded deque of committed Word and Boundary segments:
// at most the three most recent Word segments, plus any Boundary segments
// interleaved with or trailing them.
type History struct {
	segments []HistorySegment
}

func newHistory() *History { return &History{} }

func (h *History) reset() { h.segments = h.segments[:0] }

// commitWord moves buf's contents into a new Word segment, or does nothing
// observable if the syllable never produced any composed text.
func (h *History) commitWord(buf *SyllableBuffer) {
	if len(buf.composed) == 0 {
		buf.clear()
		return
	}
	h.segments = append(h.segments, newWordSegment(buf))
	h.trim()
	buf.clear()
}

// appendBoundary coalesces consecutive boundary keystrokes into one segment.
func (h *History) appendBoundary(ch rune) {
	if n := len(h.segments); n > 0 && h.segments[n-1].IsBoundary() {
		h.segments[n-1].Chars = append(h.segments[n-1].Chars, ch)
		return
	}
	h.segments = append(h.segments, newBoundarySegment(ch))
}

// trim drops the oldest segments until at most three Word segments remain,
// then strips any leading Boundary segments the drop exposed so the history
// never begins with a dangling separator.
func (h *History) trim() {
	words := 0
	for _, s := range h.segments {
		if s.IsWord() {
			words++
		}
	}
	for words > 3 && len(h.segments) > 0 {
		dropped := h.segments[0]
		h.segments = h.segments[1:]
		if dropped.IsWord() {
			words--
		}
	}
	for len(h.segments) > 0 && h.segments[0].IsBoundary() {
		h.segments = h.segments[1:]
	}
}

func (h *History) empty() bool { return len(h.segments) == 0 }

func (h *History) last() *HistorySegment {
	if h.empty() {
		return nil
	}
	return &h.segments[len(h.segments)-1]
}

func (h *History) popLast() HistorySegment {
	seg := h.segments[len(h.segments)-1]
	h.segments = h.segments[:len(h.segments)-1]
	return seg
}
