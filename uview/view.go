// Package uview implements the non-owning view types of §4.2: StringView
// (UTF-16), Latin1View, and UTF8View. A view is a (pointer, length) pair
// over a caller-owned buffer; nullity (Data == nil) is distinguishable from
// emptiness (Data != nil, len(Data) == 0). Views never copy and never
// outlive the buffer they point into — that discipline is entirely the
// caller's responsibility, exactly as in the source library.
package uview

import (
	"iter"
	"unicode/utf8"

	"j5.nz/qtext/internal/fold"
	"j5.nz/qtext/internal/scan"
)

// CaseSensitivity selects case-sensitive or case-insensitive behavior for
// any operation in the module that compares or searches text.
type CaseSensitivity int

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// SplitBehavior controls whether Split keeps or drops empty parts.
type SplitBehavior int

const (
	KeepEmptyParts SplitBehavior = iota
	SkipEmptyParts
)

// StringView is a non-owning view over UTF-16 code units.
type StringView struct {
	Data []uint16
}

// FromUTF16 wraps an existing code-unit slice; Data stays nil only if p is nil.
func FromUTF16(p []uint16) StringView { return StringView{Data: p} }

// FromZeroTerminated wraps a zero-terminated buffer, computing the length by
// scanning for the terminator via the shared scan primitive (§4.2: "size =
// -1 computes length with SIMD-accelerated scan for the zero code unit").
func FromZeroTerminated(p []uint16) StringView {
	n := scan.ZeroTerminatedLen16(p)
	return StringView{Data: p[:n]}
}

func (v StringView) IsNull() bool  { return v.Data == nil }
func (v StringView) Size() int     { return len(v.Data) }
func (v StringView) IsEmpty() bool { return len(v.Data) == 0 }

func clampFrom(from, size int) int {
	if from < 0 {
		from += size
		if from < 0 {
			from = 0
		}
	}
	if from > size {
		from = size
	}
	return from
}

func clampLen(n, avail int) int {
	if n < 0 || n > avail {
		return avail
	}
	return n
}

// Slice returns the subview starting at from (negative counts from the end)
// with length n (-1 meaning "to end"), clamped to the view's bounds.
func (v StringView) Slice(from, n int) StringView {
	from = clampFrom(from, len(v.Data))
	n = clampLen(n, len(v.Data)-from)
	return StringView{Data: v.Data[from : from+n]}
}

func (v StringView) Left(n int) StringView  { return v.Slice(0, n) }
func (v StringView) Mid(pos, n int) StringView {
	return v.Slice(pos, n)
}
func (v StringView) Right(n int) StringView {
	size := len(v.Data)
	if n < 0 || n > size {
		n = size
	}
	return v.Slice(size-n, n)
}

// Points iterates the Unicode code points of the view, combining surrogate
// pairs and substituting U+FFFD for lone surrogates.
func (v StringView) Points() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		data := v.Data
		for i := 0; i < len(data); i++ {
			c := data[i]
			r := rune(c)
			if c >= 0xd800 && c <= 0xdbff && i+1 < len(data) {
				low := data[i+1]
				if low >= 0xdc00 && low <= 0xdfff {
					r = (rune(c-0xd800)<<10 | rune(low-0xdc00)) + 0x10000
					i++
				} else {
					r = 0xfffd
				}
			} else if c >= 0xd800 && c <= 0xdfff {
				r = 0xfffd
			}
			if !yield(r) {
				return
			}
		}
	}
}

func sameUnitsEqual(a, b []uint16, cs CaseSensitivity) bool {
	if len(a) != len(b) {
		return false
	}
	if cs == CaseSensitive {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	for i := range a {
		if foldUnit(a[i]) != foldUnit(b[i]) {
			return false
		}
	}
	return true
}

// foldUnit folds a single UTF-16 code unit through the Latin-1 table when it
// falls in that range; full Unicode folding for the general case lives in
// the compare package, which has the golang.org/x/text/cases dependency.
func foldUnit(c uint16) uint16 {
	return fold.Rune(c)
}

// StartsWith reports whether v begins with other under cs.
func (v StringView) StartsWith(other StringView, cs CaseSensitivity) bool {
	if len(other.Data) > len(v.Data) {
		return false
	}
	return sameUnitsEqual(v.Data[:len(other.Data)], other.Data, cs)
}

// EndsWith reports whether v ends with other under cs.
func (v StringView) EndsWith(other StringView, cs CaseSensitivity) bool {
	if len(other.Data) > len(v.Data) {
		return false
	}
	return sameUnitsEqual(v.Data[len(v.Data)-len(other.Data):], other.Data, cs)
}

// indexOf is a plain Boyer-Moore-free substring search used only for Split's
// separator scanning; the matcher package is the place to reach for when
// repeated searches against varying haystacks are needed.
func indexOf(haystack, needle []uint16, cs CaseSensitivity) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i <= len(haystack)-len(needle); i++ {
		if sameUnitsEqual(haystack[i:i+len(needle)], needle, cs) {
			return i
		}
	}
	return -1
}

// Split returns a lazy finite sequence of subviews of v, separated by sep.
func (v StringView) Split(sep StringView, behavior SplitBehavior, cs CaseSensitivity) iter.Seq[StringView] {
	return func(yield func(StringView) bool) {
		rest := v.Data
		for {
			idx := indexOf(rest, sep.Data, cs)
			var part []uint16
			if idx < 0 {
				part = rest
			} else {
				part = rest[:idx]
			}
			if behavior == KeepEmptyParts || len(part) > 0 {
				if !yield(StringView{Data: part}) {
					return
				}
			}
			if idx < 0 {
				return
			}
			rest = rest[idx+len(sep.Data):]
		}
	}
}

// Latin1View is a non-owning view over Latin-1 bytes: byte n is code point
// U+00n.
type Latin1View struct {
	Data []byte
}

func FromLatin1Bytes(b []byte) Latin1View { return Latin1View{Data: b} }

func (v Latin1View) IsNull() bool  { return v.Data == nil }
func (v Latin1View) Size() int     { return len(v.Data) }
func (v Latin1View) IsEmpty() bool { return len(v.Data) == 0 }

func (v Latin1View) Slice(from, n int) Latin1View {
	from = clampFrom(from, len(v.Data))
	n = clampLen(n, len(v.Data)-from)
	return Latin1View{Data: v.Data[from : from+n]}
}

func (v Latin1View) Left(n int) Latin1View    { return v.Slice(0, n) }
func (v Latin1View) Mid(pos, n int) Latin1View { return v.Slice(pos, n) }
func (v Latin1View) Right(n int) Latin1View {
	size := len(v.Data)
	if n < 0 || n > size {
		n = size
	}
	return v.Slice(size-n, n)
}

// Points iterates the code points of a Latin-1 buffer: one per byte.
func (v Latin1View) Points() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, b := range v.Data {
			if !yield(rune(b)) {
				return
			}
		}
	}
}

// UTF8View is a non-owning view over UTF-8 bytes. Invalid sequences decode
// as U+FFFD, one replacement per maximal ill-formed subsequence.
type UTF8View struct {
	Data []byte
}

func FromUTF8Bytes(b []byte) UTF8View { return UTF8View{Data: b} }

func (v UTF8View) IsNull() bool  { return v.Data == nil }
func (v UTF8View) Size() int     { return len(v.Data) }
func (v UTF8View) IsEmpty() bool { return len(v.Data) == 0 }

// Points iterates the decoded code points of the UTF-8 buffer.
func (v UTF8View) Points() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		data := v.Data
		for len(data) > 0 {
			r, size := utf8.DecodeRune(data)
			if r == utf8.RuneError && size == 1 {
				// Widen a truncated but otherwise well-formed prefix so it
				// yields one U+FFFD rather than one per byte.
				for size < len(data) && !utf8.FullRune(data[:size+1]) {
					size++
				}
			}
			if !yield(r) {
				return
			}
			data = data[size:]
		}
	}
}
