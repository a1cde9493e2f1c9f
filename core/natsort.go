package core

import (
	"strings"
	"unicode"
)

// NaturalCompare compares two strings case-insensitively, treating runs of
// digits as numbers, so "User 2" sorts before "User 10". Returns -1, 0 or 1.
// Plain case-insensitive comparison breaks remaining ties.
func NaturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]

		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			na, ni := readNumber(ra, i)
			nb, nj := readNumber(rb, j)
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			i, j = ni, nj
			continue
		}

		la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// readNumber parses the digit run starting at position i and returns the
// value plus the position after the run.
func readNumber(rs []rune, i int) (uint64, int) {
	var n uint64
	for i < len(rs) && unicode.IsDigit(rs[i]) {
		n = n*10 + uint64(rs[i]-'0')
		i++
	}
	return n, i
}
