// Package compare implements the N×N encoding-pair comparison matrix of
// §4.4. Rather than writing nine pairwise functions, every view type
// exposes a Points() iter.Seq[rune] (see uview), and the matrix collapses
// to one comparator consuming two code-point iterators — exactly the
// "O(N) decoders + 1 comparator" collapse §9 recommends.
package compare

import (
	"iter"
	"reflect"
	"unicode"

	"j5.nz/qtext/internal/fold"
)

// Viewer is satisfied by uview.StringView, uview.Latin1View, and
// uview.UTF8View alike.
type Viewer interface {
	Points() iter.Seq[rune]
}

// sizer is satisfied by the same three view types; it powers the
// same-encoding case-sensitive equality shortcut.
type sizer interface {
	Size() int
}

// CaseSensitivity mirrors uview.CaseSensitivity; the two are distinct types,
// but their values line up 1:1.
type CaseSensitivity int

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// Equal reports whether a and b denote the same sequence of code points
// under cs.
func Equal(a, b Viewer, cs CaseSensitivity) bool {
	if cs == CaseSensitive {
		if as, aok := a.(sizer); aok {
			if bs, bok := b.(sizer); bok && reflect.TypeOf(a) == reflect.TypeOf(b) {
				if as.Size() != bs.Size() {
					return false
				}
			}
		}
	}
	return Compare(a, b, cs) == 0
}

// Compare returns <0, 0, >0 following the code-point order of a and b under
// cs; when every compared code point is equal, the shorter sequence sorts
// first (the length tiebreak from §4.4).
func Compare(a, b Viewer, cs CaseSensitivity) int {
	next, stop := iter.Pull(a.Points())
	defer stop()
	nextB, stopB := iter.Pull(b.Points())
	defer stopB()

	for {
		ra, aok := next()
		rb, bok := nextB()
		if !aok && !bok {
			return 0
		}
		if !aok {
			return -1
		}
		if !bok {
			return 1
		}
		if cs == CaseInsensitive {
			ra = FoldRune(ra)
			rb = FoldRune(rb)
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
}

// FoldRune applies the library's case-folding rule to a single code point:
// the Latin-1 table (with its × and ß fixed points) below U+0100, and a
// canonical simple-fold representative above it: the smallest code point of
// its unicode.SimpleFold orbit, itself passed through the Latin-1 table when
// it falls below U+0100 (so U+212A KELVIN SIGN folds to 'k', like 'K' and
// 'k'). This mirrors the approach strings.EqualFold uses in the Go standard
// library, generalized to surrogate-combined code points from any encoding.
func FoldRune(r rune) rune {
	if r >= 0 && r <= 0xff {
		return rune(fold.Table[byte(r)])
	}
	m := simpleFold(r)
	if m <= 0xff {
		return rune(fold.Table[byte(m)])
	}
	return m
}

func simpleFold(r rune) rune {
	min := r
	c := unicode.SimpleFold(r)
	for c != r {
		if c < min {
			min = c
		}
		c = unicode.SimpleFold(c)
	}
	return min
}
