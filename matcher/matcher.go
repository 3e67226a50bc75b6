// Package matcher implements the Boyer-Moore string matcher of §4.3,
// ported from qstringmatcher.cpp: a reusable object that pre-computes a
// 256-entry skip table from a pattern view and can then be applied to many
// haystacks without rebuilding it.
package matcher

import (
	"unicode"

	"j5.nz/qtext/internal/fold"
	"j5.nz/qtext/uview"
)

const foldBufferCapacity = 256

// Matcher holds a pattern and its precomputed Boyer-Moore skip table.
// Rebuilding only happens in SetPattern / SetCaseSensitivity, so many
// IndexIn calls against different haystacks amortize the table's cost.
type Matcher struct {
	pattern   uview.StringView
	cs        uview.CaseSensitivity
	skiptable [256]uint8
	foldBuf   []uint16 // case-insensitive only, capped at foldBufferCapacity
}

// New builds a matcher for pattern with the given case sensitivity.
func New(pattern uview.StringView, cs uview.CaseSensitivity) *Matcher {
	m := &Matcher{}
	m.cs = cs
	m.SetPattern(pattern)
	return m
}

func foldCodeUnit(c uint16) uint16 {
	return uint16(unicode.ToLower(rune(c)))
}

// SetPattern replaces the pattern and rebuilds the skip table.
func (m *Matcher) SetPattern(pattern uview.StringView) {
	m.pattern = pattern
	m.updateSkipTable()
}

// SetCaseSensitivity updates the sensitivity and rebuilds the skip table if
// it actually changed (setting the same pattern twice must produce a
// bit-for-bit identical table, so a no-op update should not perturb it).
func (m *Matcher) SetCaseSensitivity(cs uview.CaseSensitivity) {
	if cs == m.cs {
		return
	}
	m.cs = cs
	m.updateSkipTable()
}

func (m *Matcher) CaseSensitivity() uview.CaseSensitivity { return m.cs }
func (m *Matcher) Pattern() uview.StringView              { return m.pattern }

func (m *Matcher) updateSkipTable() {
	n := m.pattern.Size()
	length := n
	if m.cs == uview.CaseInsensitive && length > foldBufferCapacity {
		length = foldBufferCapacity
	}
	l := length
	if l > 255 {
		l = 255
	}
	for i := range m.skiptable {
		m.skiptable[i] = uint8(l)
	}
	data := m.pattern.Data[n-l:]
	if m.cs == uview.CaseSensitive {
		m.foldBuf = nil
		for i := 0; i < l; i++ {
			m.skiptable[data[i]&0xff] = uint8(l - 1 - i)
		}
	} else {
		m.foldBuf = make([]uint16, 0, length)
		for i := 0; i < length; i++ {
			m.foldBuf = append(m.foldBuf, foldCodeUnit(m.pattern.Data[i]))
		}
		foldStart := length - l
		for i := 0; i < l; i++ {
			m.skiptable[fold.Rune(m.foldBuf[foldStart+i])&0xff] = uint8(l - 1 - i)
		}
	}
}

// IndexIn returns the lowest index i >= max(from, 0) at which the pattern
// matches under the chosen sensitivity, or -1 if none.
func (m *Matcher) IndexIn(haystack uview.StringView, from int) int {
	if from < 0 {
		from = 0
	}
	if m.cs == uview.CaseSensitive {
		return bmFindCaseSensitive(haystack.Data, from, m.pattern.Data, &m.skiptable)
	}
	return bmFindCaseInsensitive(haystack.Data, from, m.pattern.Data, m.foldBuf, &m.skiptable)
}

func bmFindCaseSensitive(haystack []uint16, index int, needle []uint16, skiptable *[256]uint8) int {
	l := len(haystack)
	pl := len(needle)
	if pl == 0 {
		if index > l {
			return -1
		}
		return index
	}
	plMinusOne := pl - 1
	current := index + plMinusOne
	for current < l {
		skip := int(skiptable[haystack[current]&0xff])
		if skip == 0 {
			for skip < pl {
				if haystack[current-skip] != needle[plMinusOne-skip] {
					break
				}
				skip++
			}
			if skip > plMinusOne {
				return (current) - plMinusOne
			}
			if int(skiptable[haystack[current-skip]&0xff]) == pl {
				skip = pl - skip
			} else {
				skip = 1
			}
		}
		if current > l-skip {
			break
		}
		current += skip
	}
	return -1
}

func bmFindCaseInsensitive(haystack []uint16, index int, needle []uint16, foldBuf []uint16, skiptable *[256]uint8) int {
	l := len(haystack)
	pl := len(needle)
	if pl == 0 {
		if index > l {
			return -1
		}
		return index
	}
	foldBufferLength := len(foldBuf)
	restNeedle := needle[foldBufferLength:]
	foldBufferEnd := foldBufferLength - 1
	current := index + foldBufferEnd
	for current < l {
		skip := int(skiptable[fold.Rune(foldCodeUnit(haystack[current]))&0xff])
		if skip == 0 {
			for skip < foldBufferLength {
				if foldCodeUnit(haystack[current-skip]) != foldBuf[foldBufferEnd-skip] {
					break
				}
				skip++
			}
			if skip > foldBufferEnd {
				candidatePos := current - foldBufferEnd
				restStart := candidatePos + foldBufferLength
				if restStart > l {
					restStart = l
				}
				restHaystack := haystack[restStart:]
				if len(restNeedle) == 0 || startsWithFold(restHaystack, restNeedle) {
					return candidatePos
				}
				// The buffered prefix matched but the tail did not.
				skip = 1
			} else if int(skiptable[fold.Rune(foldCodeUnit(haystack[current-skip]))&0xff]) == foldBufferLength {
				skip = foldBufferLength - skip
			} else {
				skip = 1
			}
		}
		if current > l-skip {
			break
		}
		current += skip
	}
	return -1
}

func startsWithFold(haystack, needle []uint16) bool {
	if len(needle) > len(haystack) {
		return false
	}
	for i, c := range needle {
		if foldCodeUnit(haystack[i]) != foldCodeUnit(c) {
			return false
		}
	}
	return true
}
