// Package ustring implements the mutable, implicitly-shared UTF-16 string
// of §4.1: a reference-counted buffer with pre-allocated head/tail slack so
// that prepend and append are usually an in-place write rather than a copy.
package ustring

import (
	"sync/atomic"

	"j5.nz/qtext/convert"
	"j5.nz/qtext/uview"
)

// rawSentinel marks storage that is statically allocated or aliases a
// caller-owned buffer (FromRawData): it must never be freed or mutated in
// place, so any mutating operation detaches from it first.
const rawSentinel = -1

// data is the shared, reference-counted buffer. size code units starting at
// offset are the logical content; the slack before offset exists for cheap
// prepend, the slack after offset+size for cheap append.
type data struct {
	units    []uint16 // len(units) == capacity
	offset   int
	size     int
	refcount int32 // atomic; rawSentinel for raw/static buffers
}

// emptyData is the read-only, never-freed empty-string sentinel named in
// §5 as the module's only mutable global state (and even it is read-only).
var emptyData = &data{refcount: rawSentinel}

// String is a handle to a shared data buffer. The zero value is not valid;
// use New().
//
// Unlike QString in C++, String has no copy constructor: Go's assignment
// (b := a, passing a by value, storing it in a slice) only copies the
// struct's *data pointer, it does not run retain() and bump refcount. So a
// plain copy of a String is NOT a sharer in the §5 sense — the library has
// no way to observe that b exists, and a later mutation through b (Append,
// Insert, ...) will detach only if isShared() already reports true for some
// other reason, otherwise it writes straight into the buffer a still reads
// from. Two Strings only become safely independent sharers, the way two
// QStrings assigned from each other are, by going through Share() (bump the
// refcount explicitly) or Clone() (force an independent copy up front). Any
// code that hands out a String by plain assignment/copy and then lets
// either side mutate it is responsible for calling Share() first; String
// itself cannot intercept the copy to do this automatically.
type String struct {
	d *data
}

func newOwned(units []uint16, offset, size int) String {
	return String{d: &data{units: units, offset: offset, size: size, refcount: 1}}
}

// New returns an empty string sharing the global empty sentinel.
func New() String {
	return String{d: emptyData}
}

// WithCapacity reserves n code units of capacity in a fresh, empty buffer.
func WithCapacity(n int) String {
	if n <= 0 {
		return New()
	}
	return newOwned(make([]uint16, n), 0, 0)
}

// FromUTF16 copies p into a freshly owned buffer.
func FromUTF16(p []uint16) String {
	units := make([]uint16, len(p))
	copy(units, p)
	return newOwned(units, 0, len(units))
}

// FromView copies a uview.StringView into a freshly owned buffer.
func FromView(v uview.StringView) String {
	return FromUTF16(v.Data)
}

// FromLatin1 decodes a Latin-1 view by zero-extending each byte.
func FromLatin1(v uview.Latin1View) String {
	return FromUTF16(convert.Latin1ToUTF16(v.Data))
}

// FromUTF8 decodes a UTF-8 view, substituting U+FFFD for ill-formed
// sequences.
func FromUTF8(v uview.UTF8View) String {
	return FromUTF16(convert.UTF8ToUTF16(v.Data))
}

// FromUCS4 expands a UCS-4 code point slice into UTF-16, surrogate-pairing
// anything above U+FFFF.
func FromUCS4(p []rune) String {
	return FromUTF16(convert.UCS4ToUTF16(p))
}

// FromRawData constructs an aliasing view over p with refcount ==
// rawSentinel: no mutating operation may write through it without first
// detaching into a private buffer.
func FromRawData(p []uint16) String {
	return String{d: &data{units: p, offset: 0, size: len(p), refcount: rawSentinel}}
}

// View returns a non-owning uview.StringView over the string's current
// content. The view is only valid as long as s (or a sharer of s's buffer)
// is not mutated.
func (s String) View() uview.StringView {
	return uview.StringView{Data: s.d.units[s.d.offset : s.d.offset+s.d.size]}
}

func (s String) Size() int     { return s.d.size }
func (s String) Capacity() int { return len(s.d.units) }
func (s String) IsNull() bool  { return s.d == emptyData }
func (s String) IsEmpty() bool { return s.d.size == 0 }

// Data returns an immutable pointer to the string's content; it never
// detaches, matching constData()'s contract.
func (s String) Data() []uint16 {
	return s.d.units[s.d.offset : s.d.offset+s.d.size]
}

// isShared reports whether the buffer has more than one owner, or is the
// raw/static sentinel that must never be written to in place.
func (s String) isShared() bool {
	if s.d.refcount == rawSentinel {
		return true
	}
	return atomic.LoadInt32(&s.d.refcount) > 1
}

// retain increments the shared buffer's refcount with acquire-release
// ordering, per §5's concurrency contract for implicitly shared strings.
func (d *data) retain() {
	if d.refcount == rawSentinel {
		return
	}
	atomic.AddInt32(&d.refcount, 1)
}

// release decrements the refcount; the last releaser's allocation becomes
// eligible for garbage collection (Go has no manual free, so "release" here
// means "stop referencing", matching §5's "owned by whichever sharer last
// decrements to zero").
func (d *data) release() {
	if d.refcount == rawSentinel {
		return
	}
	atomic.AddInt32(&d.refcount, -1)
}

// Share returns a new handle to the same underlying buffer, incrementing
// the refcount the way assigning one QString to another does.
func (s String) Share() String {
	s.d.retain()
	return String{d: s.d}
}

// Clone is a forced deep copy, bypassing implicit sharing entirely.
func (s String) Clone() String {
	return FromUTF16(s.Data())
}
