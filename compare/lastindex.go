package compare

import "j5.nz/qtext/uview"

// LastIndexOf implements the rolling-hash fallback search named in §4.4/§6
// for a needle that is not reused across many haystacks (the matcher
// package is for that case). The window hash weights the unit at offset j
// by 2^j; stepping the window back by one unit applies
// h_{i+1} = ((h_i - (first << (n-1))) << 1) + next, where first is the unit
// leaving the window's end and next the unit entering at its start, with
// wraparound on the platform word size; a hash match is always followed by
// a full equality check before being reported.
//
// Per the open question recorded in §9: an empty needle with from < 0
// excludes the end-of-string match; with from >= 0 it is included.
func LastIndexOf(haystack, needle uview.StringView, from int, cs CaseSensitivity) int {
	hs := haystack.Data
	n := needle.Data
	hsLen := len(hs)
	nLen := len(n)

	if from < 0 {
		from += hsLen
	}
	if from > hsLen-nLen {
		from = hsLen - nLen
	}

	if nLen == 0 {
		if from < 0 {
			return -1
		}
		if from > hsLen {
			return hsLen
		}
		return from
	}
	if from < 0 || from > hsLen-nLen {
		return -1
	}

	hashUnit := func(c uint16) uint16 {
		if cs == CaseSensitive {
			return c
		}
		return uint16(FoldRune(rune(c)))
	}

	var needleHash, haystackHash uint
	for i := 0; i < nLen; i++ {
		needleHash = (needleHash << 1) + uint(hashUnit(n[nLen-1-i]))
		haystackHash = (haystackHash << 1) + uint(hashUnit(hs[from+nLen-1-i]))
	}

	idx := from
	for {
		if haystackHash == needleHash && sameUnits(hs[idx:idx+nLen], n, cs) {
			return idx
		}
		if idx == 0 {
			return -1
		}
		idx--
		first := hashUnit(hs[idx+nLen])
		next := hashUnit(hs[idx])
		haystackHash = ((haystackHash - (uint(first) << uint(nLen-1))) << 1) + uint(next)
	}
}

func sameUnits(a, b []uint16, cs CaseSensitivity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if cs == CaseInsensitive {
			ca = uint16(FoldRune(rune(ca)))
			cb = uint16(FoldRune(rune(cb)))
		}
		if ca != cb {
			return false
		}
	}
	return true
}
