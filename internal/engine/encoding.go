package engine

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// decompose converts s to fully-decomposed Unicode normal form (NFD), used
// when OutputEncoding is Decomposed: "â" becomes "a" followed by a
// combining circumflex.
func decompose(s string) string { return norm.NFD.String(s) }

func runeCount(s string) int { return utf8.RuneCountInString(s) }
