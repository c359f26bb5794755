package engine

// EditAction is what Process returns to the host: delete DeleteCount code
// points from the tail of the rendered buffer, then append Text.
type EditAction struct {
	DeleteCount int
	Text        string
}

// InputMethod selects the keyboard convention driving the dispatcher.
type InputMethod int

const (
	Telex InputMethod = iota
	VNI
)

// TonePlacement selects where the tone mark lands within a vowel cluster.
type TonePlacement int

const (
	Orthographic TonePlacement = iota
	NucleusOnly
)

// OutputEncoding selects the Unicode form of emitted text.
type OutputEncoding int

const (
	Precomposed OutputEncoding = iota
	Decomposed
)

// WTransformKind records what a horn-style compound transform last produced,
// so the escape engine knows how to reverse it.
type WTransformKind int

const (
	WNone WTransformKind = iota
	WStandalone
	WCompoundUo
	WCompoundUoi
	WCompoundUoFinalConsonant
	WCompoundUa
)

// noKey is the sentinel for "no transform key recorded". Every real
// trigger key is a printable rune, never 0.
const noKey rune = 0

// SyllableBuffer holds the in-progress syllable: the composed (transformed)
// sequence the user currently sees, the raw keystrokes that produced it, and
// the transform-state flags that drive escape and tone repositioning.
type SyllableBuffer struct {
	composed []rune
	raw      []rune

	isForeignMode    bool
	transformsLocked bool

	lastTransformKey    rune
	lastWTransformKind  WTransformKind
	suppressedTransform rune

	// renderedLen is the rune count of whatever is currently displayed for
	// this syllable in the host, measured in the active output encoding.
	renderedLen int
}

func newSyllableBuffer() *SyllableBuffer {
	return &SyllableBuffer{lastTransformKey: noKey, suppressedTransform: noKey}
}

func (b *SyllableBuffer) clear() {
	b.composed = b.composed[:0]
	b.raw = b.raw[:0]
	b.isForeignMode = false
	b.transformsLocked = false
	b.lastTransformKey = noKey
	b.lastWTransformKind = WNone
	b.suppressedTransform = noKey
	b.renderedLen = 0
}

// empty reports whether the active syllable has nothing left to show. This
// is driven by composed, not raw: a correction can absorb more raw
// keystrokes than it leaves visible composed code points (e.g. the second
// 'd' of "dd"->"đ" never appears in composed on its own), so composed can
// run out before raw does. Both commit-on-boundary and backspace's
// active-syllable-vs-history gate key off this same emptiness.
func (b *SyllableBuffer) empty() bool { return len(b.composed) == 0 }

func (b *SyllableBuffer) composedString() string { return string(b.composed) }

func (b *SyllableBuffer) rawString() string { return string(b.raw) }

// segmentKind discriminates the two HistorySegment variants.
type segmentKind int

const (
	segWord segmentKind = iota
	segBoundary
)

// HistorySegment is either a committed Word or a run of word-boundary
// keystrokes. Only the fields relevant to Kind are meaningful.
type HistorySegment struct {
	Kind segmentKind

	// Word fields.
	Composed         []rune
	Raw              []rune
	IsForeignMode    bool
	TransformsLocked bool

	// Boundary fields.
	Chars []rune
}

func newWordSegment(b *SyllableBuffer) HistorySegment {
	return HistorySegment{
		Kind:             segWord,
		Composed:         append([]rune(nil), b.composed...),
		Raw:              append([]rune(nil), b.raw...),
		IsForeignMode:    b.isForeignMode,
		TransformsLocked: b.transformsLocked,
	}
}

func newBoundarySegment(ch rune) HistorySegment {
	return HistorySegment{Kind: segBoundary, Chars: []rune{ch}}
}

// IsWord reports whether this segment is a committed word.
func (s HistorySegment) IsWord() bool { return s.Kind == segWord }

// IsBoundary reports whether this segment is a run of boundary keystrokes.
func (s HistorySegment) IsBoundary() bool { return s.Kind == segBoundary }
