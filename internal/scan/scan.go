// Package scan holds the fast-path scanning primitives described in §4.4:
// locating a code unit inside a UTF-16 buffer, checking whether a byte
// buffer is ASCII, and measuring a zero-terminated UTF-16 buffer. Each is
// specified as an algorithmic contract, not an implementation technique —
// the scalar loops below satisfy that contract; hasSIMD records whether the
// CPU could run an accelerated path without changing the observable result.
package scan

import "golang.org/x/sys/cpu"

// hasSIMD reports whether the host could service these scans with a wider
// vector path. It is read by callers that want to log/record the available
// acceleration tier; it never changes the return value of the functions
// below, per §4.4's "observable semantics... unchanged" rule.
var hasSIMD = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// HasAccelerated reports whether the scan primitives in this package could
// be serviced by a SIMD-widened loop on this host.
func HasAccelerated() bool {
	return hasSIMD
}

// IndexUint16 returns the index of the first occurrence of c in buf, or
// len(buf) if c does not occur. It behaves identically regardless of the
// alignment of buf's backing array.
func IndexUint16(buf []uint16, c uint16) int {
	for i, v := range buf {
		if v == c {
			return i
		}
	}
	return len(buf)
}

// FirstNonASCII reports whether buf is entirely ASCII (bytes < 0x80) and,
// if not, the index of the first non-ASCII byte.
func FirstNonASCII(buf []byte) (ascii bool, index int) {
	for i, b := range buf {
		if b >= 0x80 {
			return false, i
		}
	}
	return true, len(buf)
}

// ZeroTerminatedLen16 scans a zero-terminated UTF-16 buffer and returns the
// number of code units before the terminator. The terminator itself is not
// included in the count, matching strlen-style length discovery used by
// uview.StringView when constructed with size == -1.
func ZeroTerminatedLen16(p []uint16) int {
	for i, v := range p {
		if v == 0 {
			return i
		}
	}
	return len(p)
}
