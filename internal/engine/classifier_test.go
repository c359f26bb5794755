package engine

import "testing"

func TestIsVowel(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'a', true}, {'e', true}, {'i', true}, {'o', true}, {'u', true}, {'y', true},
		{'A', true}, {'Ă', true}, {'ư', true}, {'ế', true}, {'Ộ', true},
		{'b', false}, {'d', false}, {'đ', false}, {'1', false},
	}
	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := isVowel(tt.char); got != tt.expected {
				t.Errorf("isVowel(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestBaseVowelAndToneOf(t *testing.T) {
	tests := []struct {
		toned    rune
		wantBase rune
		wantTone toneKey
	}{
		{'á', 'a', toneAcute},
		{'ờ', 'ơ', toneGrave},
		{'ệ', 'ê', toneDot},
		{'Ẵ', 'Ă', toneTilde},
	}
	for _, tt := range tests {
		if got := baseVowel(tt.toned); got != tt.wantBase {
			t.Errorf("baseVowel(%c) = %c, want %c", tt.toned, got, tt.wantBase)
		}
		tone, ok := toneOf(tt.toned)
		if !ok || tone != tt.wantTone {
			t.Errorf("toneOf(%c) = (%v, %v), want (%v, true)", tt.toned, tone, ok, tt.wantTone)
		}
	}

	if _, ok := toneOf('a'); ok {
		t.Error("toneOf('a') should report false for a base vowel")
	}
}

func TestIsNucleusOnly(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'ă', true}, {'â', true}, {'ê', true}, {'ô', true}, {'ơ', true}, {'ư', true},
		{'ắ', true}, {'ễ', true},
		{'a', false}, {'e', false}, {'i', false}, {'á', false},
	}
	for _, tt := range tests {
		if got := isNucleusOnly(tt.char); got != tt.expected {
			t.Errorf("isNucleusOnly(%c) = %v, want %v", tt.char, got, tt.expected)
		}
	}
}

func TestApplyTone(t *testing.T) {
	toned, ok := applyTone('ơ', toneHook)
	if !ok || toned != 'ở' {
		t.Errorf("applyTone('ơ', hook) = (%c, %v), want ('ở', true)", toned, ok)
	}
	if _, ok := applyTone('b', toneAcute); ok {
		t.Error("applyTone on a consonant should fail")
	}
}

func TestSameLetter(t *testing.T) {
	if !sameLetter('a', 'á') {
		t.Error("sameLetter('a', 'á') should be true: same base vowel")
	}
	if sameLetter('a', 'e') {
		t.Error("sameLetter('a', 'e') should be false")
	}
	if !sameLetter('D', 'd') {
		t.Error("sameLetter('D', 'd') should be true")
	}
}
