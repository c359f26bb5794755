package engine

import "testing"

func TestTargetVowelIndex(t *testing.T) {
	tests := []struct {
		name      string
		composed  string
		placement TonePlacement
		wantIdx   int
		wantOK    bool
	}{
		{"no vowels", "ng", Orthographic, 0, false},
		{"single vowel", "ca", Orthographic, 1, true},
		{"two vowels, second is syllable-final, picks first", "chao", Orthographic, 2, true},
		{"q excludes following u from nucleus", "qua", Orthographic, 2, true},
		{"gi excludes i when another vowel follows", "gia", Orthographic, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composed := []rune(tt.composed)
			idx, ok := targetVowelIndex(composed, len(composed), tt.placement)
			if ok != tt.wantOK || idx != tt.wantIdx {
				t.Errorf("targetVowelIndex(%q) = (%d, %v), want (%d, %v)", tt.composed, idx, ok, tt.wantIdx, tt.wantOK)
			}
		})
	}
}

func TestTargetVowelIndex_NucleusOnlyPreferred(t *testing.T) {
	// "nghia": n-g-h-i-a. The 'i' follows 'h', not 'g', so it's an effective
	// vowel; 'a' is also effective. Neither is nucleus-only here, and no
	// consonant follows 'a', so the first of the two vowels, 'i', wins.
	composed := []rune("nghia")
	idx, ok := targetVowelIndex(composed, len(composed), Orthographic)
	if !ok || composed[idx] != 'i' {
		t.Errorf("targetVowelIndex(nghia) = (%d,%v) -> %c, want 'i'", idx, ok, composed[idx])
	}

	// "nghêa" (hypothetical with a nucleus-only ê present) always prefers
	// the nucleus-only vowel regardless of position.
	composed2 := []rune("nghêa")
	idx2, ok2 := targetVowelIndex(composed2, len(composed2), Orthographic)
	if !ok2 || composed2[idx2] != 'ê' {
		t.Errorf("targetVowelIndex(nghêa) = (%d,%v) -> %c, want 'ê'", idx2, ok2, composed2[idx2])
	}
}

func TestClearOtherTones(t *testing.T) {
	composed := []rune("chán")
	earliest := clearOtherTones(composed, len(composed), -1)
	if string(composed) != "chan" {
		t.Errorf("clearOtherTones result = %q, want %q", string(composed), "chan")
	}
	if earliest != 2 {
		t.Errorf("clearOtherTones earliest = %d, want 2", earliest)
	}
}

func TestClearOtherTones_KeepsTarget(t *testing.T) {
	composed := []rune("hoà")
	earliest := clearOtherTones(composed, len(composed), 2)
	if string(composed) != "hoà" {
		t.Errorf("clearOtherTones should not touch the kept index, got %q", string(composed))
	}
	if earliest != len(composed) {
		t.Errorf("clearOtherTones earliest = %d, want %d (nothing touched)", earliest, len(composed))
	}
}

func TestFindToneIndex(t *testing.T) {
	idx, tone, ok := findToneIndex([]rune("thoả"))
	if !ok || tone != toneHook || idx != 3 {
		t.Errorf("findToneIndex(thoả) = (%d, %v, %v), want (3, hook, true)", idx, tone, ok)
	}

	if _, _, ok := findToneIndex([]rune("thoa")); ok {
		t.Error("findToneIndex(thoa) should report no tone found")
	}
}
