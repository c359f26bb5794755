package engine

import "testing"

func TestDecompose(t *testing.T) {
	decomposed := decompose("việt")
	if runeCount(decomposed) <= runeCount("việt") {
		t.Errorf("expected decompose to grow the rune count, got %d runes from %q", runeCount(decomposed), decomposed)
	}
}

func TestRuneCount(t *testing.T) {
	if got := runeCount("chào"); got != 4 {
		t.Errorf("runeCount(chào) = %d, want 4", got)
	}
}
