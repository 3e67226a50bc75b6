// Package mutate implements the insert/remove/replace/append/prepend
// operations of §4.7. Every operation here relies on ustring.String's own
// detach-on-write discipline (Resize, Reserve, DataMut all detach a shared
// buffer before touching it), so this package only has to get the shape of
// each mutation right, not the sharing contract.
package mutate

import (
	"j5.nz/qtext/matcher"
	"j5.nz/qtext/ustring"
	"j5.nz/qtext/uview"
)

// Insert writes text at pos. If pos is beyond the current size, the gap is
// padded with spaces first.
func Insert(s *ustring.String, pos int, text []uint16) {
	size := s.Size()
	if pos < 0 {
		pos = 0
	}
	if pos >= size {
		if pos > size {
			pad := make([]uint16, pos-size)
			for i := range pad {
				pad[i] = ' '
			}
			s.Append(pad)
		}
		s.Append(cloneUnits(text))
		return
	}
	if len(text) == 0 {
		return
	}
	textCopy := cloneUnits(text)
	s.Resize(size + len(textCopy))
	data := s.DataMut()
	copy(data[pos+len(textCopy):], data[pos:size])
	copy(data[pos:pos+len(textCopy)], textCopy)
}

// Remove deletes n code units starting at pos, clamped to the string's
// bounds. Capacity is preserved.
func Remove(s *ustring.String, pos, n int) {
	size := s.Size()
	if pos < 0 {
		pos = 0
	}
	if pos > size {
		pos = size
	}
	if n < 0 {
		n = 0
	}
	if pos+n > size {
		n = size - pos
	}
	if n == 0 {
		return
	}
	data := s.DataMut()
	copy(data[pos:], data[pos+n:size])
	s.Truncate(size - n)
}

// Append writes text after the current content.
func Append(s *ustring.String, text []uint16) {
	s.Append(cloneUnits(text))
}

// Prepend writes text before the current content.
func Prepend(s *ustring.String, text []uint16) {
	s.Prepend(cloneUnits(text))
}

// Replace substitutes every non-overlapping occurrence of before with
// after, under cs. Matches are collected first with a Matcher (§4.7:
// "collect all match positions first"), then one of three copy plans runs
// depending on how |before| compares to |after|.
func Replace(s *ustring.String, before, after []uint16, cs uview.CaseSensitivity) {
	if len(before) == 0 {
		return
	}
	positions := collectMatches(s, before, cs)
	if len(positions) == 0 {
		return
	}
	afterCopy := cloneUnits(after)
	switch {
	case len(before) == len(afterCopy):
		replaceEqual(s, positions, len(before), afterCopy)
	case len(before) > len(afterCopy):
		replaceShrink(s, positions, len(before), afterCopy)
	default:
		replaceGrow(s, positions, len(before), afterCopy)
	}
}

func collectMatches(s *ustring.String, before []uint16, cs uview.CaseSensitivity) []int {
	m := matcher.New(uview.StringView{Data: before}, cs)
	haystack := uview.StringView{Data: s.Data()}
	var positions []int
	from := 0
	for {
		p := m.IndexIn(haystack, from)
		if p < 0 {
			return positions
		}
		positions = append(positions, p)
		from = p + len(before)
	}
}

// replaceEqual overwrites each match in place; the total size never
// changes.
func replaceEqual(s *ustring.String, positions []int, beforeLen int, after []uint16) {
	data := s.DataMut()
	for _, p := range positions {
		copy(data[p:p+beforeLen], after)
	}
}

// replaceShrink performs a left-to-right compacting copy: the write cursor
// never runs ahead of the read cursor, so the whole pass is safely in
// place.
func replaceShrink(s *ustring.String, positions []int, beforeLen int, after []uint16) {
	size := s.Size()
	data := s.DataMut()
	write, read := 0, 0
	for _, p := range positions {
		n := p - read
		copy(data[write:write+n], data[read:read+n])
		write += n
		copy(data[write:write+len(after)], after)
		write += len(after)
		read = p + beforeLen
	}
	n := size - read
	copy(data[write:write+n], data[read:read+n])
	write += n
	s.Truncate(write)
}

// replaceGrow pre-grows the buffer to its final size, then performs a
// right-to-left expanding copy so that no not-yet-read byte is overwritten
// before it is read.
func replaceGrow(s *ustring.String, positions []int, beforeLen int, after []uint16) {
	size := s.Size()
	delta := len(after) - beforeLen
	newSize := size + delta*len(positions)
	s.Resize(newSize)
	data := s.DataMut()

	write := newSize
	read := size
	for i := len(positions) - 1; i >= 0; i-- {
		p := positions[i]
		tailStart := p + beforeLen
		n := read - tailStart
		write -= n
		copy(data[write:write+n], data[tailStart:tailStart+n])
		write -= len(after)
		copy(data[write:write+len(after)], after)
		read = p
	}
	n := read
	write -= n
	copy(data[write:write+n], data[0:n])
}

func cloneUnits(p []uint16) []uint16 {
	out := make([]uint16, len(p))
	copy(out, p)
	return out
}
