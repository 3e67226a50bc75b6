package matcher

import (
	"j5.nz/qtext/internal/fold"
	"j5.nz/qtext/uview"
)

// Latin1Matcher is the Latin-1-specialized sibling of Matcher, ported from
// qlatin1stringmatcher.h's hashed-needle Boyer-Moore searcher: the hash
// function operates directly on a byte rather than folding through a
// 16-bit code unit, which is both simpler and exactly what the single-byte
// alphabet calls for.
type Latin1Matcher struct {
	pattern   uview.Latin1View
	cs        uview.CaseSensitivity
	skiptable [256]uint8
}

// NewLatin1 builds a Latin-1 matcher for pattern with the given sensitivity.
func NewLatin1(pattern uview.Latin1View, cs uview.CaseSensitivity) *Latin1Matcher {
	m := &Latin1Matcher{}
	m.cs = cs
	m.SetPattern(pattern)
	return m
}

func (m *Latin1Matcher) SetPattern(pattern uview.Latin1View) {
	m.pattern = pattern
	m.updateSkipTable()
}

func (m *Latin1Matcher) SetCaseSensitivity(cs uview.CaseSensitivity) {
	if cs == m.cs {
		return
	}
	m.cs = cs
	m.updateSkipTable()
}

func (m *Latin1Matcher) CaseSensitivity() uview.CaseSensitivity { return m.cs }
func (m *Latin1Matcher) Pattern() uview.Latin1View              { return m.pattern }

func (m *Latin1Matcher) hash(b byte) byte {
	if m.cs == uview.CaseSensitive {
		return b
	}
	return fold.Byte(b)
}

func (m *Latin1Matcher) updateSkipTable() {
	n := len(m.pattern.Data)
	l := n
	if l > 255 {
		l = 255
	}
	for i := range m.skiptable {
		m.skiptable[i] = uint8(l)
	}
	data := m.pattern.Data[n-l:]
	for i := 0; i < l; i++ {
		m.skiptable[m.hash(data[i])] = uint8(l - 1 - i)
	}
}

// IndexIn returns the lowest index i >= max(from, 0) at which the pattern
// matches haystack under the chosen sensitivity, or -1 if none.
func (m *Latin1Matcher) IndexIn(haystack uview.Latin1View, from int) int {
	if from < 0 {
		from = 0
	}
	hs := haystack.Data
	needle := m.pattern.Data
	l := len(hs)
	pl := len(needle)
	if pl == 0 {
		if from > l {
			return -1
		}
		return from
	}
	plMinusOne := pl - 1
	current := from + plMinusOne
	for current < l {
		skip := int(m.skiptable[m.hash(hs[current])])
		if skip == 0 {
			for skip < pl {
				if m.hash(hs[current-skip]) != m.hash(needle[plMinusOne-skip]) {
					break
				}
				skip++
			}
			if skip > plMinusOne {
				return current - plMinusOne
			}
			if int(m.skiptable[m.hash(hs[current-skip])]) == pl {
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
