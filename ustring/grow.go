package ustring

// growthBias records which side of the buffer a mutation is growing, so
// detach and reserve can bias the newly allocated slack toward that side
// (§4.1: "biasing slack to the end side being grown... to the front" when
// prepending).
type growthBias int

const (
	growEnd growthBias = iota
	growStart
)

// detach ensures s owns a private, unshared buffer, copying the current
// content if the buffer was shared or raw-aliased. extra and bias describe
// headroom the caller is about to need, so the fresh allocation doesn't
// immediately have to grow again.
func (s *String) detach(extra int, bias growthBias) {
	if !s.isShared() {
		return
	}
	oldView := s.Data()
	if extra < 0 {
		extra = 0
	}
	capNeeded := len(oldView) + extra
	newCap := growCapacity(capNeeded, 0)
	units := make([]uint16, newCap+1) // +1 keeps room for the zero terminator
	offset := 0
	if bias == growStart {
		offset = newCap - len(oldView)
		if offset < 0 {
			offset = 0
		}
	}
	copy(units[offset:], oldView)
	s.d.release()
	s.d = &data{units: units, offset: offset, size: len(oldView), refcount: 1}
	s.terminate()
}

// growCapacity implements the geometric (at least doubling) growth policy:
// the new capacity is at least 2*max(needed, current).
func growCapacity(needed, current int) int {
	target := needed
	if current > target {
		target = current
	}
	target *= 2
	if target < 2 {
		target = 2
	}
	return target
}

// reserve grows capacity to at least n code units, biasing new slack per
// bias. It never shrinks.
func (s *String) reserve(n int, bias growthBias) {
	if s.isShared() {
		s.detach(n-s.d.size, bias)
	}
	avail := len(s.d.units) - s.d.offset - s.d.size
	need := n - s.d.size
	if bias == growEnd {
		if avail >= need {
			return
		}
	} else {
		if s.d.offset >= need {
			return
		}
	}
	newCap := growCapacity(n, len(s.d.units))
	units := make([]uint16, newCap+1)
	offset := 0
	if bias == growStart {
		offset = newCap - s.d.size
		if offset < 0 {
			offset = 0
		}
	}
	copy(units[offset:], s.Data())
	s.d.units = units
	s.d.offset = offset
	s.terminate()
}

// Reserve grows capacity to at least n code units without changing size.
func (s *String) Reserve(n int) {
	s.reserve(n, growEnd)
}

// terminate writes the zero code unit immediately after the logical
// content, the invariant §3/§8 require of every owned buffer.
func (s *String) terminate() {
	if s.d.refcount == rawSentinel {
		return
	}
	end := s.d.offset + s.d.size
	if end < len(s.d.units) {
		s.d.units[end] = 0
		return
	}
	// Capacity didn't leave room (shouldn't happen given reserve/detach's
	// +1 headroom, but stay correct if it ever does).
	s.d.units = append(s.d.units, 0)
}

// Resize changes the logical size. Growing introduces code units with
// unspecified content (zero in a fresh allocation, but whatever the buffer
// already held when existing capacity is reused, e.g. after Truncate); the
// caller is responsible for filling them before relying on their content.
func (s *String) Resize(n int) {
	if n <= s.d.size && !s.isShared() {
		s.d.size = n
		s.terminate()
		return
	}
	s.reserve(n, growEnd)
	s.d.size = n
	s.terminate()
}

// ResizeFill is Resize, but every newly introduced code unit is set to ch.
func (s *String) ResizeFill(n int, ch uint16) {
	old := s.d.size
	s.Resize(n)
	if n > old {
		units := s.d.units
		for i := s.d.offset + old; i < s.d.offset+n; i++ {
			units[i] = ch
		}
	}
}

// Truncate shortens the string, preserving capacity.
func (s *String) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= s.d.size {
		return
	}
	if s.isShared() {
		s.detach(0, growEnd)
	}
	s.d.size = n
	s.terminate()
}

// Clear releases the buffer and collapses s to the empty sentinel.
func (s *String) Clear() {
	s.d.release()
	s.d = emptyData
}

// DataMut returns a mutable pointer to the content, detaching first if the
// buffer is shared.
func (s *String) DataMut() []uint16 {
	if s.isShared() {
		s.detach(0, growEnd)
	}
	return s.d.units[s.d.offset : s.d.offset+s.d.size]
}
