package engine

import "testing"

func newBuf(composed, raw string) *SyllableBuffer {
	b := newSyllableBuffer()
	b.composed = []rune(composed)
	b.raw = []rune(raw)
	return b
}

func TestTryConsonantTransform(t *testing.T) {
	tests := []struct {
		name         string
		composed     string
		wantComposed string
		wantAction   bool
	}{
		{"single d becomes đ", "d", "đ", true},
		{"d within distance 4", "dan", "đan", true},
		{"uppercase D", "Dan", "Đan", true},
		{"no d present", "an", "an", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBuf(tt.composed, tt.composed)
			action := tryConsonantTransform(buf, 'd')
			if tt.wantAction && action == nil {
				t.Fatalf("expected an action, got nil")
			}
			if !tt.wantAction && action != nil {
				t.Fatalf("expected no action, got %+v", action)
			}
			if string(buf.composed) != tt.wantComposed {
				t.Errorf("composed = %q, want %q", string(buf.composed), tt.wantComposed)
			}
		})
	}
}

func TestTrySimpleVowelTransform(t *testing.T) {
	buf := newBuf("to", "to")
	action := trySimpleVowelTransform(buf, telexMethod, 'o')
	if action == nil {
		t.Fatal("expected a transform action for the second 'o'")
	}
	if string(buf.composed) != "tô" {
		t.Errorf("composed = %q, want %q", string(buf.composed), "tô")
	}
	if action.DeleteCount != 1 || action.Text != "ô" {
		t.Errorf("action = %+v, want delete 1 insert 'ô'", action)
	}
}

func TestTrySimpleVowelTransform_NoMatch(t *testing.T) {
	buf := newBuf("ch", "ch")
	if action := trySimpleVowelTransform(buf, telexMethod, 'o'); action != nil {
		t.Errorf("expected no transform without a preceding 'o', got %+v", action)
	}
}

func TestTryCompoundHorn(t *testing.T) {
	tests := []struct {
		name         string
		composed     string
		wantComposed string
	}{
		{"lone u falls back to the free-transform table", "mu", "mư"},
		{"lone o falls back to the free-transform table", "bo", "bơ"},
		{"u o with nothing following (case 7)", "buo", "bươ"},
		{"standalone when nothing to attach to", "b", "bư"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBuf(tt.composed, tt.composed)
			action := tryCompoundHorn(buf, telexMethod, 'w')
			if action == nil {
				t.Fatalf("expected an action for %q", tt.composed)
			}
			if string(buf.composed) != tt.wantComposed {
				t.Errorf("composed = %q, want %q", string(buf.composed), tt.wantComposed)
			}
		})
	}
}

// TestTryCompoundHorn_RefusesTonedVowel: a tone on any vowel of the
// compound patterns refuses the match, so the trigger falls through to the
// free-transform table and rewrites only the untoned letter.
func TestTryCompoundHorn_RefusesTonedVowel(t *testing.T) {
	tests := []struct {
		name         string
		composed     string
		raw          string
		wantComposed string
	}{
		{"toned u before o: only the o gains a horn", "úo", "uso", "úơ"},
		{"toned o before u: only the u gains a horn", "óu", "osu", "óư"},
		{"toned u before a: the breve fallback still rewrites the a", "úa", "usa", "úă"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBuf(tt.composed, tt.raw)
			action := tryCompoundHorn(buf, telexMethod, 'w')
			if string(buf.composed) != tt.wantComposed {
				t.Errorf("composed = %q, want %q", string(buf.composed), tt.wantComposed)
			}
			if buf.lastWTransformKind != WNone && action != nil {
				t.Errorf("lastWTransformKind = %v, want WNone so escape takes the untransform-table path", buf.lastWTransformKind)
			}
		})
	}
}

func TestTryToneMark(t *testing.T) {
	buf := newBuf("chao", "chao")
	action := tryToneMark(buf, telexMethod, 'f', Orthographic)
	if action == nil {
		t.Fatal("expected a tone action")
	}
	if string(buf.composed) != "chào" {
		t.Errorf("composed = %q, want %q", string(buf.composed), "chào")
	}
}

func TestTryToneMark_ReplacesExistingTone(t *testing.T) {
	// "za" + acute -> "zá", then + grave must retone the same vowel rather
	// than bailing out because the vowel is no longer a bare base letter.
	buf := newBuf("zá", "zas")
	action := tryToneMark(buf, telexMethod, 'f', Orthographic)
	if action == nil {
		t.Fatal("expected a tone action replacing the existing tone")
	}
	if string(buf.composed) != "zà" {
		t.Errorf("composed = %q, want %q", string(buf.composed), "zà")
	}
}

func TestTryToneMark_RemoveTone(t *testing.T) {
	buf := newBuf("chán", "chans")
	action := tryToneMark(buf, telexMethod, 'z', Orthographic)
	if action == nil {
		t.Fatal("expected a remove-tone action")
	}
	if string(buf.composed) != "chan" {
		t.Errorf("composed = %q, want %q", string(buf.composed), "chan")
	}
}

func TestTryToneMark_NoVowel(t *testing.T) {
	buf := newBuf("ng", "ng")
	if action := tryToneMark(buf, telexMethod, 's', Orthographic); action != nil {
		t.Errorf("expected no tone action without a vowel, got %+v", action)
	}
}

func TestHornAutoFixBeforeConsonant(t *testing.T) {
	// "nưo" is ư followed by a still-plain o; about to be followed by a
	// consonant, the o should pick up the horn before the consonant lands.
	buf := newBuf("nưo", "nuow")
	idx, ok := hornAutoFixBeforeConsonant(buf)
	if !ok {
		t.Fatal("expected the trailing ư+o to be recognized")
	}
	if buf.composed[idx] != 'ơ' {
		t.Errorf("composed[%d] = %c, want ơ", idx, buf.composed[idx])
	}
}
