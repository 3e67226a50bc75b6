package ustring

import "j5.nz/qtext/uview"

// Append writes p after the current content, using tail slack when
// available and growing (biased toward the end) otherwise.
func (s *String) Append(p []uint16) {
	if len(p) == 0 {
		return
	}
	s.reserve(s.d.size+len(p), growEnd)
	units := s.d.units
	copy(units[s.d.offset+s.d.size:], p)
	s.d.size += len(p)
	s.terminate()
}

// Prepend writes p before the current content, using head slack when
// available and growing (biased toward the start) otherwise.
func (s *String) Prepend(p []uint16) {
	if len(p) == 0 {
		return
	}
	if s.isShared() || s.d.offset < len(p) {
		s.reserve(s.d.size+len(p), growStart)
	}
	// reserve(..., growStart) already repositioned the existing content so
	// that at least len(p) units of slack sit immediately before it; the
	// prepended data lands there without disturbing the rest.
	newOffset := s.d.offset - len(p)
	copy(s.d.units[newOffset:s.d.offset], p)
	s.d.offset = newOffset
	s.d.size += len(p)
	s.terminate()
}

// AppendView is Append over a uview.StringView.
func (s *String) AppendView(v uview.StringView) { s.Append(v.Data) }

// PrependView is Prepend over a uview.StringView.
func (s *String) PrependView(v uview.StringView) { s.Prepend(v.Data) }
